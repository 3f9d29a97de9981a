// Package middleware provides Fiber middleware shared by the HTTP surfaces.
//
// Currently this is just RayID, which tags every incoming request with a
// correlation identifier picked up by logger.WithRayID.
package middleware
