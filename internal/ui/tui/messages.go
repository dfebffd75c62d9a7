package tui

type workspaceRefreshedMsg struct {
	found bool
	root  string
	err   error
}

type demoDoneMsg struct {
	name   string
	output string
	err    error
}
