package main

import (
	"fmt"

	"github.com/fwojciec/resumeparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	resumes, err := deps.Resumes.FindResumes(deps.Ctx, resumeparse.ResumeFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumeparse.ErrorMessage(err))
		return err
	}

	if len(resumes) == 0 {
		fmt.Fprintln(deps.Stdout, "No stored results. Use 'resumeparse parse --save' to create one.")
		return nil
	}

	for _, res := range resumes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", res.ID, res.Name, res.Email, res.FilePath)
	}

	return nil
}
