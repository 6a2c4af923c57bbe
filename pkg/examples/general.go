package examples

func getGeneralExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Starter Tree",
			Description: "A couple of top-level folders and a first snippet to try dispatching",
			Folders: []ExampleFolder{
				{
					Name: "Projects",
					Snippets: []ExampleSnippet{
						{Title: "Go tests", Content: "go test ./..."},
						{Title: "Go tests (race)", Content: "go test -race -count=1 ./..."},
					},
				},
				{
					Name: "Work",
					Snippets: []ExampleSnippet{
						{Title: "Disk usage", Content: "df -h\ndu -sh * | sort -h | tail"},
					},
				},
			},
			Snippets: []ExampleSnippet{
				{Title: "Hello World", Content: "print('Hello World')"},
			},
		},
	}
}
