package orchestrator

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ListRobots returns the robots of a folder.
func (c *Client) ListRobots(ctx context.Context, folderID string, opts ...CallOption) ([]Robot, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Robot](ctx, c, "ListRobots", "/odata/Robots", folderID, "", opts)
}

// ListRobotLogs returns robot log lines matching filter, for example
// "JobKey eq 5ad0b2b6-...". The filter is mandatory; the log collection is too
// large to read unfiltered.
func (c *Client) ListRobotLogs(ctx context.Context, folderID, filter string, opts ...CallOption) ([]RobotLog, error) {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"filter": validation.Validate(filter, filterRules...),
	}); err != nil {
		return nil, err
	}
	return list[RobotLog](ctx, c, "ListRobotLogs", "/odata/RobotLogs", folderID, filter, opts)
}

// ListSessions returns the robot sessions of a folder.
func (c *Client) ListSessions(ctx context.Context, folderID string, opts ...CallOption) ([]Session, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Session](ctx, c, "ListSessions", "/odata/Sessions", folderID, "", opts)
}
