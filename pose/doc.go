// Package pose models the planar state of a robot: a 2D vector paired with
// an orientation component at the same time-derivative order.
//
// Pose is position and heading, VelocityPose is linear and angular velocity,
// AccelerationPose is linear and angular acceleration. Constructors validate
// that every component carries the dimension of its derivative order, so a
// VelocityPose can never hold plain lengths.
package pose
