package roster

// Seed returns the fixed set of activities loaded at process start.
// The service never creates or deletes activities at runtime; only the
// participant lists change.
func Seed() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice basketball skills and compete in inter-school games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "liam@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Improve swimming techniques and participate in swim meets",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Explore acting, stagecraft, and perform in school plays",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu", "mia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Create artwork using various mediums including painting and sculpture",
			Schedule:        "Wednesdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"charlotte@mergington.edu", "amelia@mergington.edu"},
		},
		"Debate Club": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "alexander@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science competitions and conduct experiments",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"harper@mergington.edu", "evelyn@mergington.edu"},
		},
	}
}
