package crew

type Task struct {
	Name string

	Description    string
	ExpectedOutput string

	Agent *Agent
}
