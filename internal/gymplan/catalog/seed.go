package catalog

// basicSet is inserted once, the first time any routine is generated.
var basicSet = []Exercise{
	{Name: "Bench Press", MuscleGroup: Chest, Compound: true, Instructions: "Lower the bar to mid chest, press up until arms are locked."},
	{Name: "Incline Dumbbell Press", MuscleGroup: Chest, Compound: true, Instructions: "Bench at 30 degrees, press the dumbbells over the upper chest."},
	{Name: "Push-Up", MuscleGroup: Chest, Compound: true, Instructions: "Body in a straight line, chest to the floor and back up."},
	{Name: "Cable Fly", MuscleGroup: Chest, Compound: false, Instructions: "Slight elbow bend, bring the handles together in front of the chest."},
	{Name: "Deadlift", MuscleGroup: Back, Compound: true, Instructions: "Neutral spine, drive through the heels and lock out the hips."},
	{Name: "Pull-Up", MuscleGroup: Back, Compound: true, Instructions: "Full hang, pull the chin over the bar."},
	{Name: "Barbell Row", MuscleGroup: Back, Compound: true, Instructions: "Hinge forward, row the bar to the lower ribs."},
	{Name: "Lat Pulldown", MuscleGroup: Back, Compound: false, Instructions: "Pull the bar to the upper chest, control the way up."},
	{Name: "Overhead Press", MuscleGroup: Shoulders, Compound: true, Instructions: "Press the bar from the collarbone to overhead lockout."},
	{Name: "Arnold Press", MuscleGroup: Shoulders, Compound: true, Instructions: "Rotate the palms outward while pressing the dumbbells up."},
	{Name: "Lateral Raise", MuscleGroup: Shoulders, Compound: false, Instructions: "Raise the dumbbells to shoulder height with soft elbows."},
	{Name: "Face Pull", MuscleGroup: Shoulders, Compound: false, Instructions: "Pull the rope towards the face, elbows high."},
	{Name: "Barbell Curl", MuscleGroup: Arms, Compound: false, Instructions: "Elbows pinned, curl the bar up and lower slowly."},
	{Name: "Hammer Curl", MuscleGroup: Arms, Compound: false, Instructions: "Neutral grip, curl without swinging."},
	{Name: "Triceps Pushdown", MuscleGroup: Arms, Compound: false, Instructions: "Elbows at the sides, extend fully."},
	{Name: "Close-Grip Bench Press", MuscleGroup: Arms, Compound: true, Instructions: "Hands shoulder width, elbows tucked."},
	{Name: "Back Squat", MuscleGroup: Quadriceps, Compound: true, Instructions: "Break at the hips and knees, reach depth, drive up."},
	{Name: "Leg Press", MuscleGroup: Quadriceps, Compound: true, Instructions: "Feet shoulder width, lower until knees reach 90 degrees."},
	{Name: "Walking Lunge", MuscleGroup: Quadriceps, Compound: true, Instructions: "Long steps, back knee close to the floor."},
	{Name: "Leg Extension", MuscleGroup: Quadriceps, Compound: false, Instructions: "Extend fully and squeeze at the top."},
	{Name: "Romanian Deadlift", MuscleGroup: Hamstrings, Compound: true, Instructions: "Soft knees, push the hips back until the hamstrings stretch."},
	{Name: "Lying Leg Curl", MuscleGroup: Hamstrings, Compound: false, Instructions: "Curl the pad to the glutes, lower under control."},
	{Name: "Glute Bridge", MuscleGroup: Hamstrings, Compound: true, Instructions: "Drive the hips up and hold for a second."},
	{Name: "Standing Calf Raise", MuscleGroup: Calves, Compound: false, Instructions: "Full stretch at the bottom, pause at the top."},
	{Name: "Seated Calf Raise", MuscleGroup: Calves, Compound: false, Instructions: "Knees at 90 degrees, slow reps."},
	{Name: "Plank", MuscleGroup: Core, Compound: false, Instructions: "Forearms down, hold a straight line."},
	{Name: "Hanging Leg Raise", MuscleGroup: Core, Compound: false, Instructions: "Raise the legs without swinging."},
	{Name: "Cable Crunch", MuscleGroup: Core, Compound: false, Instructions: "Crunch the ribs towards the hips."},
	{Name: "Russian Twist", MuscleGroup: Core, Compound: false, Instructions: "Rotate the torso side to side, feet off the floor."},
}

// BasicSet returns a copy of the seed exercises.
func BasicSet() []Exercise {
	out := make([]Exercise, len(basicSet))
	for i, e := range basicSet {
		e.Basic = true
		out[i] = e
	}
	return out
}
