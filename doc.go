/*
Package spur computes the 2D outline of involute spur gears.

The outline is derived by an explicit pipeline where each stage takes the
previous stage's result and returns a new value:

	g, err := spur.Derive(spur.NewSpec(10, 25))    // radii from module, teeth, pressure angle
	inv, err := spur.BuildInvolute(g, 20)          // flank involute from base to outer circle
	tooth, err := spur.BuildTooth(inv, g)          // both flanks and the root segments
	profile, err := spur.AssembleProfile(tooth, 25) // tooth repeated around the gear

Generate runs all of the above. Points are gonum r2.Vec values and a
rotation by θ follows the row-vector convention p·R(θ), which turns points
clockwise for positive θ. See Rotate.
*/
package spur
