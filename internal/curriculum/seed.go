package curriculum

// DefaultPaths returns the built-in starter curriculum. It is used to
// seed an empty store so the app works out of the box; published rows in
// the store take precedence once present.
func DefaultPaths() []Path {
	return []Path{
		{
			ID:         "fundamentals",
			Title:      "Programming Fundamentals",
			Difficulty: "beginner",
			Order:      1,
			Modules: []Module{
				{
					ID:    "fund-basics",
					Title: "Getting Started",
					Order: 1,
					Lessons: []Lesson{
						{ID: "fund-intro", Title: "What Is a Program?", Order: 1, Concepts: []string{"programs", "instructions"}},
						{ID: "fund-variables", Title: "Variables and Values", Order: 2, Concepts: []string{"variables", "types"}},
						{ID: "fund-operators", Title: "Operators and Expressions", Order: 3, Concepts: []string{"operators", "expressions"}},
					},
				},
				{
					ID:    "fund-flow",
					Title: "Control Flow",
					Order: 2,
					Lessons: []Lesson{
						{ID: "fund-conditionals", Title: "Making Decisions", Order: 1, Concepts: []string{"conditionals", "booleans"}},
						{ID: "fund-loops", Title: "Repeating with Loops", Order: 2, Concepts: []string{"loops", "iteration"}},
						{ID: "fund-functions", Title: "Writing Functions", Order: 3, Concepts: []string{"functions", "parameters", "return values"}},
					},
				},
			},
		},
		{
			ID:         "data-structures",
			Title:      "Data Structures",
			Difficulty: "intermediate",
			Order:      2,
			Modules: []Module{
				{
					ID:    "ds-collections",
					Title: "Collections",
					Order: 1,
					Lessons: []Lesson{
						{ID: "ds-arrays", Title: "Arrays and Lists", Order: 1, Concepts: []string{"arrays", "indexing"}},
						{ID: "ds-maps", Title: "Maps and Dictionaries", Order: 2, Concepts: []string{"maps", "keys", "hashing"}},
						{ID: "ds-strings", Title: "Working with Strings", Order: 3, Concepts: []string{"strings", "slicing"}},
					},
				},
				{
					ID:    "ds-advanced",
					Title: "Beyond the Basics",
					Order: 2,
					Lessons: []Lesson{
						{ID: "ds-stacks", Title: "Stacks and Queues", Order: 1, Concepts: []string{"stacks", "queues"}},
						{ID: "ds-recursion", Title: "Thinking Recursively", Order: 2, Concepts: []string{"recursion", "base cases"}},
					},
				},
			},
		},
	}
}
