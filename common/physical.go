package common

// Units are not fixed by the height model.
// The defaults below read naturally as metric:
// - Velocity is in m/s
// - Position is in meters
// - Time is in seconds
// - Acceleration is in m/s^2

// GravityEarth is the acceleration term of the height equation.
// It is applied without the conventional 1/2 factor: y = a*t^2 + v0*t + x0.
const GravityEarth = -9.8

const DefaultLaunchVelocity = 2520.0
const DefaultLaunchPosition = 0.0
