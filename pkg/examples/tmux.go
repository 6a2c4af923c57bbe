package examples

func getTmuxExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "tmux",
			Description: "Commands to run inside a tmux pane",
			Folders: []ExampleFolder{
				{
					Name: "tmux",
					Snippets: []ExampleSnippet{
						{Title: "List panes", Content: "tmux list-panes -a -F '#{session_name}:#{window_index}.#{pane_index} #{pane_id} #{pane_current_command}'"},
						{Title: "Clear history", Content: "clear; tmux clear-history"},
						{Title: "Reload config", Content: "tmux source-file ~/.tmux.conf"},
					},
				},
			},
		},
	}
}
