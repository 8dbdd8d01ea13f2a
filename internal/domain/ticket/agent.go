package ticket

import "fmt"

// Agent is a support agent tickets can be assigned to.
type Agent struct {
	id    string
	name  string
	email string
}

func NewAgent(id, name, email string) (*Agent, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("agent ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("agent name is required")
	}

	return &Agent{
		id:    id,
		name:  name,
		email: email,
	}, nil
}

func (a *Agent) ID() string {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Email() string {
	return a.email
}
