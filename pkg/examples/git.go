package examples

func getGitExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Git",
			Description: "Git commands that are easy to forget",
			Folders: []ExampleFolder{
				{
					Name: "Git",
					Snippets: []ExampleSnippet{
						{Title: "Pretty log", Content: "git log --oneline --graph --decorate --all -20"},
						{Title: "Undo last commit (keep changes)", Content: "git reset --soft HEAD~1"},
						{Title: "Prune merged branches", Content: "git fetch --prune\ngit branch --merged | grep -v '\\*' | xargs -r git branch -d"},
						{Title: "Stash including untracked", Content: "git stash push -u -m \"wip\""},
					},
				},
			},
		},
	}
}
