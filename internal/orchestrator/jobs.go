package orchestrator

import (
	"context"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ListJobs returns the jobs of a folder that match filter, for example
// "State eq 'Running'". The filter is mandatory.
func (c *Client) ListJobs(ctx context.Context, folderID, filter string, opts ...CallOption) ([]Job, error) {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"filter": validation.Validate(filter, filterRules...),
	}); err != nil {
		return nil, err
	}
	return list[Job](ctx, c, "ListJobs", "/odata/Jobs", folderID, filter, opts)
}

type startInfo struct {
	ReleaseKey string  `json:"ReleaseKey"`
	Strategy   string  `json:"Strategy"`
	RobotIDs   []int64 `json:"RobotIds,omitempty"`
	JobsCount  int     `json:"JobsCount"`
	Source     string  `json:"Source"`
}

// StartJob starts the release identified by releaseKey. A positive robotID pins the
// job to that robot; zero lets Orchestrator allocate any available robot.
func (c *Client) StartJob(ctx context.Context, folderID, releaseKey string, robotID int64) error {
	if err := checkArgs(validation.Errors{
		"folder":      validation.Validate(folderID, folderRules...),
		"release key": validation.Validate(strings.TrimSpace(releaseKey), nameRules...),
		"robot id":    validation.Validate(robotID, validation.Min(int64(0))),
	}); err != nil {
		return err
	}

	info := startInfo{ReleaseKey: releaseKey, Strategy: "JobsCount", JobsCount: 1, Source: "Manual"}
	if robotID > 0 {
		info = startInfo{ReleaseKey: releaseKey, Strategy: "Specific", RobotIDs: []int64{robotID}, JobsCount: 0, Source: "Manual"}
	}

	_, err := c.do(ctx, request{
		operation: "StartJob",
		method:    http.MethodPost,
		path:      "/odata/Jobs/UiPath.Server.Configuration.OData.StartJobs",
		folderID:  folderID,
		body:      map[string]startInfo{"startInfo": info},
		expect:    []int{http.StatusOK, http.StatusCreated},
	})
	return err
}

// StopJob stops a running job. An empty strategy kills the job.
func (c *Client) StopJob(ctx context.Context, folderID string, jobID int64, strategy StopStrategy) error {
	if strategy == "" {
		strategy = StopKill
	}
	if err := checkArgs(validation.Errors{
		"folder":   validation.Validate(folderID, folderRules...),
		"id":       validation.Validate(jobID, idRules...),
		"strategy": validation.Validate(strategy, strategyRule),
	}); err != nil {
		return err
	}
	_, err := c.do(ctx, request{
		operation: "StopJob",
		method:    http.MethodPost,
		path:      entityPath("Jobs", jobID) + "/UiPath.Server.Configuration.OData.StopJob",
		folderID:  folderID,
		body:      map[string]StopStrategy{"strategy": strategy},
		expect:    []int{http.StatusOK},
	})
	return err
}
