package usecase

import "github.com/aalvaropc/slidey/internal/ports"

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

func (uc *InitProject) Execute(root string, force bool) error {
	return uc.initializer.Init(root, force)
}
