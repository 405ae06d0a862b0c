package main

import (
	"fmt"

	"github.com/fwojciec/resumeparse"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	res, err := deps.Resumes.FindResumeByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumeparse.ErrorMessage(err))
		return err
	}

	record := &resumeparse.ResumeRecord{
		Name:   res.Name,
		Email:  res.Email,
		Skills: res.Skills,
	}
	out, err := record.JSON(c.Indent)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
