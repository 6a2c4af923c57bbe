package examples

func getShellExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Shell",
			Description: "Everyday shell one-liners",
			Folders: []ExampleFolder{
				{
					Name: "Shell",
					Snippets: []ExampleSnippet{
						{Title: "Largest files", Content: "find . -type f -exec du -h {} + | sort -rh | head -20"},
						{Title: "Listening ports", Content: "ss -tlnp"},
						{Title: "Follow syslog", Content: "journalctl -f"},
						{Title: "Remove pyc files", Content: "find . -name '*.pyc' -exec rm {} \\;"},
					},
					Folders: []ExampleFolder{
						{
							Name: "Processes",
							Snippets: []ExampleSnippet{
								{Title: "Top memory", Content: "ps aux --sort=-%mem | head"},
								{Title: "Tree", Content: "ps -ejH"},
							},
						},
					},
				},
			},
		},
	}
}
