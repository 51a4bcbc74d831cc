package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"uipathctl/internal/logging"
)

// ListQueues returns the queue definitions of a folder.
func (c *Client) ListQueues(ctx context.Context, folderID string, opts ...CallOption) ([]Queue, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Queue](ctx, c, "ListQueues", "/odata/QueueDefinitions", folderID, "", opts)
}

// ListQueueItems returns the queue items matching filter, for example
// "QueueDefinitionId eq 42". The filter is mandatory.
func (c *Client) ListQueueItems(ctx context.Context, folderID, filter string, opts ...CallOption) ([]QueueItem, error) {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"filter": validation.Validate(filter, filterRules...),
	}); err != nil {
		return nil, err
	}
	return list[QueueItem](ctx, c, "ListQueueItems", "/odata/QueueItems", folderID, filter, opts)
}

// GetQueueItem returns a single queue item. SaveAs is the only option it honours.
func (c *Client) GetQueueItem(ctx context.Context, folderID string, itemID int64, opts ...CallOption) (*QueueItem, error) {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"id":     validation.Validate(itemID, idRules...),
	}); err != nil {
		return nil, err
	}
	return get[QueueItem](ctx, c, "GetQueueItem", entityPath("QueueItems", itemID), folderID, opts)
}

type itemData struct {
	Name            string         `json:"Name"`
	Priority        Priority       `json:"Priority"`
	DeferDate       *Timestamp     `json:"DeferDate"`
	DueDate         *Timestamp     `json:"DueDate"`
	Reference       string         `json:"Reference"`
	SpecificContent map[string]any `json:"SpecificContent"`
}

// AddQueueItem adds an item to the named queue. An empty priority means Normal.
// A reference already present in the queue yields an error matching both
// ErrDuplicateReference and ErrUnexpectedStatus.
func (c *Client) AddQueueItem(ctx context.Context, folderID, queue string, data map[string]any, reference string, priority Priority, opts ...CallOption) (*AddedQueueItem, error) {
	if priority == "" {
		priority = PriorityNormal
	}
	if err := checkArgs(validation.Errors{
		"folder":   validation.Validate(folderID, folderRules...),
		"queue":    validation.Validate(strings.TrimSpace(queue), nameRules...),
		"priority": validation.Validate(priority, priorityRule),
	}); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]any{}
	}

	options := resolveCallOptions(opts)
	body, err := c.do(ctx, request{
		operation: "AddQueueItem",
		method:    http.MethodPost,
		path:      "/odata/Queues/UiPathODataSvc.AddQueueItem",
		folderID:  folderID,
		query:     url.Values{"$select": {schemaFor[AddedQueueItem]().selectList()}},
		body: map[string]itemData{"itemData": {
			Name:            queue,
			Priority:        priority,
			Reference:       reference,
			SpecificContent: data,
		}},
		expect: []int{http.StatusCreated},
		saveAs: options.saveAs,
	})
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict {
			c.logger.Warn("item with reference already in the queue",
				logging.FieldOperation, "AddQueueItem",
				"queue", queue,
				"reference", reference,
			)
			return nil, fmt.Errorf("%w: %w", ErrDuplicateReference, err)
		}
		return nil, err
	}
	added, err := decodeRecord[AddedQueueItem](body)
	if err != nil {
		return nil, fmt.Errorf("AddQueueItem: %w", err)
	}
	return &added, nil
}

type updateItemBody struct {
	Name            string         `json:"Name"`
	Priority        Priority       `json:"Priority"`
	SpecificContent map[string]any `json:"SpecificContent"`
	DeferDate       *Timestamp     `json:"DeferDate"`
	DueDate         *Timestamp     `json:"DueDate"`
	RiskSlaDate     *Timestamp     `json:"RiskSlaDate"`
}

// UpdateQueueItem replaces the specific content of a queue item. The item is sent
// with High priority and without defer, due or risk SLA dates.
func (c *Client) UpdateQueueItem(ctx context.Context, folderID, queue string, itemID int64, data map[string]any) error {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"queue":  validation.Validate(strings.TrimSpace(queue), nameRules...),
		"id":     validation.Validate(itemID, idRules...),
	}); err != nil {
		return err
	}
	if data == nil {
		data = map[string]any{}
	}
	_, err := c.do(ctx, request{
		operation: "UpdateQueueItem",
		method:    http.MethodPut,
		path:      entityPath("QueueItems", itemID),
		folderID:  folderID,
		body: updateItemBody{
			Name:            queue,
			Priority:        PriorityHigh,
			SpecificContent: data,
		},
		expect: []int{http.StatusOK},
	})
	return err
}

// DeleteQueueItem deletes a queue item.
func (c *Client) DeleteQueueItem(ctx context.Context, folderID string, itemID int64) error {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"id":     validation.Validate(itemID, idRules...),
	}); err != nil {
		return err
	}
	_, err := c.do(ctx, request{
		operation: "DeleteQueueItem",
		method:    http.MethodDelete,
		path:      entityPath("QueueItems", itemID),
		folderID:  folderID,
		expect:    []int{http.StatusNoContent},
	})
	return err
}
