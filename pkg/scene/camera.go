package scene

import "github.com/goki/mat32"

// Camera defines the viewpoint used by the per-frame LOD pass. It holds the
// world position plus the matrices needed to construct a view frustum:
// projection and the inverse of the camera's world (pose) matrix.
//
// Camera state is passed explicitly into each per-frame call so multiple
// scenes and tests can run independently.
type Camera struct {
	Position mat32.Vec3 // world-space camera position
	Target   mat32.Vec3 // where the camera points; moves with orbiting
	UpDir    mat32.Vec3 // up direction, defaults to positive Y

	FOV    float32 // field of view in degrees
	Aspect float32 // aspect ratio (width/height)
	Near   float32 // near plane z coordinate
	Far    float32 // far plane z coordinate

	WorldMatrix mat32.Mat4 // camera pose in world coordinates
	ViewMatrix  mat32.Mat4 // inverse of WorldMatrix
	PrjnMatrix  mat32.Mat4 // perspective projection
	VPMatrix    mat32.Mat4 // PrjnMatrix * ViewMatrix, input to frustum construction
}

// NewCamera returns a camera with default optics looking at the origin
// from (0, 0, 10), with matrices already computed.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.UpdateMatrix()
	return cm
}

// Defaults sets default optics and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.Position = mat32.NewVec3(0, 0, 10)
	cm.Target = mat32.Vec3Zero
	cm.UpDir = mat32.Vec3Y
}

// LookAt points the camera at the given target and recomputes matrices.
func (cm *Camera) LookAt(target, upDir mat32.Vec3) {
	cm.Target = target
	if upDir == mat32.Vec3Zero {
		upDir = mat32.Vec3Y
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// UpdateMatrix recomputes the world, view, projection and combined
// view-projection matrices from the current pose and optics. Call after
// changing Position, Target or the optics fields.
func (cm *Camera) UpdateMatrix() {
	var quat mat32.Quat
	quat.SetFromRotationMatrix(mat32.NewLookAt(cm.Position, cm.Target, cm.UpDir))
	cm.WorldMatrix.SetTransform(cm.Position, quat, mat32.NewVec3(1, 1, 1))
	cm.ViewMatrix.SetInverse(&cm.WorldMatrix)
	cm.PrjnMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	cm.VPMatrix.MulMatrices(&cm.PrjnMatrix, &cm.ViewMatrix)
}

// DistTo returns the distance from the camera to a world-space point.
func (cm *Camera) DistTo(pos mat32.Vec3) float32 {
	return pos.Sub(cm.Position).Length()
}
