// Package scene provides the retained-mode objects the driver composes:
// a perspective camera, a directional light, and box meshes held in an
// append-only [Scene].
//
//   - [PerspectiveCamera]: field of view, aspect and depth range, with a
//     cached projection matrix refreshed by UpdateProjectionMatrix
//   - [DirectionalLight]: color and intensity aimed at the origin
//   - [Mesh]: a [BoxGeometry] with a [PhongMaterial], a position and an
//     [Euler] rotation
//
// # Example
//
//	s := scene.New()
//	cam := scene.NewPerspectiveCamera(75, 16.0/9.0, 0.1, 100)
//	cam.Position.Z = 2
//	s.Add(scene.NewDirectionalLight(scene.White, 1))
//	s.Add(scene.NewMesh(scene.NewBoxGeometry(1, 1, 1), scene.NewPhongMaterial(0x44a88)))
//
// Nothing in this package is safe for concurrent use.
package scene
