package orchestrator_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"uipathctl/internal/orchestrator"
)

func TestListAssetsSendsHeadersAndSelect(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{
		"Id": 7, "Name": "ApiEndpoint", "ExternalName": null, "HasDefaultValue": true,
		"Value": "https://erp", "ValueScope": "Global", "ValueType": "Text", "IntValue": 0,
		"StringValue": "https://erp", "BoolValue": false, "CredentialUsername": "",
		"CanBeDeleted": true
	}]}`))
	client := fake.client(t)

	assets, err := client.ListAssets(context.Background(), testFolder)
	if err != nil {
		t.Fatalf("ListAssets returned error: %v", err)
	}
	want := []orchestrator.Asset{{
		ID:              7,
		Name:            "ApiEndpoint",
		HasDefaultValue: true,
		Value:           "https://erp",
		ValueScope:      "Global",
		ValueType:       "Text",
		StringValue:     "https://erp",
		CanBeDeleted:    true,
	}}
	if diff := cmp.Diff(want, assets); diff != "" {
		t.Fatalf("assets mismatch (-want +got):\n%s", diff)
	}

	req, _ := fake.lastRequest(t)
	if req.Method != http.MethodGet || req.URL.Path != "/odata/Assets" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	if got := req.Header.Get("X-UIPATH-OrganizationUnitID"); got != testFolder {
		t.Fatalf("unexpected folder header %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
	wantSelect := "Id,Name,ExternalName,HasDefaultValue,Value,ValueScope,ValueType,IntValue,StringValue,BoolValue,CredentialUsername,CredentialStoreId,CanBeDeleted,Description"
	if got := req.URL.Query().Get("$select"); got != wantSelect {
		t.Fatalf("unexpected $select %q", got)
	}
}

func TestListRolesOmitsFolderHeader(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{"Id":1,"Name":"Administrator","DisplayName":"Administrator","Type":"Tenant"}]}`))
	client := fake.client(t)

	roles, err := client.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("ListRoles returned error: %v", err)
	}
	if len(roles) != 1 || roles[0].DisplayName != "Administrator" {
		t.Fatalf("unexpected roles %+v", roles)
	}
	req, _ := fake.lastRequest(t)
	if _, ok := req.Header["X-Uipath-Organizationunitid"]; ok {
		t.Fatal("expected no folder header for roles")
	}
}

func TestListJobsCombinesFilters(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{
		"Id": 11, "Key": "a1", "ReleaseName": "Invoices_Prod", "Type": "Unattended",
		"CreationTime": "2024-03-01T10:00:00.123Z", "StartTime": "2024-03-01T10:00:05",
		"EndTime": null, "State": "Running", "Source": "Manual"
	}]}`))
	client := fake.client(t)

	jobs, err := client.ListJobs(context.Background(), testFolder, "State eq 'Running'",
		orchestrator.Filter("ReleaseName eq 'Invoices_Prod'"),
		orchestrator.Top(5),
		orchestrator.Skip(10),
		orchestrator.OrderBy("CreationTime desc"),
	)
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if !job.CreationTime.Equal(time.Date(2024, 3, 1, 10, 0, 0, 123000000, time.UTC)) {
		t.Fatalf("unexpected creation time %v", job.CreationTime)
	}
	if !job.StartTime.Equal(time.Date(2024, 3, 1, 10, 0, 5, 0, time.UTC)) {
		t.Fatalf("unexpected start time %v", job.StartTime)
	}
	if !job.EndTime.IsZero() {
		t.Fatalf("expected zero end time, got %v", job.EndTime)
	}

	req, _ := fake.lastRequest(t)
	query := req.URL.Query()
	want := map[string]string{
		"$filter":  "(State eq 'Running') and (ReleaseName eq 'Invoices_Prod')",
		"$top":     "5",
		"$skip":    "10",
		"$orderby": "CreationTime desc",
	}
	for key, value := range want {
		if got := query.Get(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}
}

func TestMissingRequiredFieldReturnsSchemaError(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{"Id":3,"Name":null}]}`))
	client := fake.client(t)

	_, err := client.ListBuckets(context.Background(), testFolder)
	var schemaErr *orchestrator.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if schemaErr.Schema != "Bucket" || schemaErr.Field != "Identifier" {
		t.Fatalf("unexpected schema error %+v", schemaErr)
	}
}

func TestMistypedFieldReturnsSchemaError(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{"Id":"three","Name":"Invoices"}]}`))
	client := fake.client(t)

	_, err := client.ListQueues(context.Background(), testFolder)
	var schemaErr *orchestrator.SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Field != "Id" {
		t.Fatalf("expected schema error on Id, got %v", err)
	}
}

func TestEmptyRequiredTimestampReturnsSchemaError(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{
		"Id": 99, "QueueDefinitionId": 3, "Status": "New", "Reference": "INV-1",
		"CreationTime": "", "StartProcessing": "", "RetryNumber": 0, "SpecificData": "{}"
	}`))
	client := fake.client(t)

	_, err := client.GetQueueItem(context.Background(), testFolder, 99)
	var schemaErr *orchestrator.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if schemaErr.Schema != "QueueItem" || schemaErr.Field != "CreationTime" {
		t.Fatalf("unexpected schema error %+v", schemaErr)
	}
}

func TestEmptyOptionalTimestampDecodesAsZero(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{
		"Id": 99, "QueueDefinitionId": 3, "Status": "New", "Reference": "INV-1",
		"CreationTime": "2024-03-01T10:00:00Z", "EndProcessing": "", "RetryNumber": 0, "SpecificData": "{}"
	}`))
	client := fake.client(t)

	item, err := client.GetQueueItem(context.Background(), testFolder, 99)
	if err != nil {
		t.Fatalf("GetQueueItem returned error: %v", err)
	}
	if !item.EndProcessing.IsZero() {
		t.Fatalf("expected zero end processing, got %v", item.EndProcessing)
	}
}

func TestMissingValueEnvelopeReturnsSchemaError(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"records":[]}`))
	client := fake.client(t)

	_, err := client.ListCalendars(context.Background(), testFolder)
	var schemaErr *orchestrator.SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Field != "value" {
		t.Fatalf("expected schema error on value, got %v", err)
	}
}

func TestMachineRobotVersionsCollapsesToFirst(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[
		{"Id":1,"Name":"VM01","Type":"Standard","NonProductionSlots":0,"UnattendedSlots":2,
		 "RobotVersions":[{"Count":1,"Version":"23.10.2"},{"Count":1,"Version":"22.4.1"}]},
		{"Id":2,"Name":"VM02","Type":"Template","NonProductionSlots":1,"UnattendedSlots":0,
		 "RobotVersions":[]}
	]}`))
	client := fake.client(t)

	machines, err := client.ListMachines(context.Background(), testFolder)
	if err != nil {
		t.Fatalf("ListMachines returned error: %v", err)
	}
	got := []orchestrator.RobotVersion{machines[0].RobotVersions, machines[1].RobotVersions}
	want := []orchestrator.RobotVersion{"23.10.2", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("robot versions mismatch (-want +got):\n%s", diff)
	}
}

func TestListSessionsAcceptsNumericIdentifiers(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{
		"Id": 5, "MachineId": 12, "HostMachineName": "VM01", "State": "Available",
		"ReportingTime": "2024-03-01T10:00:00Z", "OrganizationUnitId": "4242"
	}]}`))
	client := fake.client(t)

	sessions, err := client.ListSessions(context.Background(), testFolder)
	if err != nil {
		t.Fatalf("ListSessions returned error: %v", err)
	}
	if sessions[0].MachineID != "12" || sessions[0].OrganizationUnitID.Int() != 4242 {
		t.Fatalf("unexpected session %+v", sessions[0])
	}
}

func TestGetQueueItemDecodesScalarBody(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{
		"Id": 99, "QueueDefinitionId": 3, "Status": "New", "Reference": "INV-1",
		"CreationTime": "2024-03-01T10:00:00Z", "RetryNumber": 0, "SpecificData": "{}"
	}`))
	client := fake.client(t)

	item, err := client.GetQueueItem(context.Background(), testFolder, 99)
	if err != nil {
		t.Fatalf("GetQueueItem returned error: %v", err)
	}
	if item.ID != 99 || item.Reference != "INV-1" || !item.StartProcessing.IsZero() {
		t.Fatalf("unexpected item %+v", item)
	}
	req, _ := fake.lastRequest(t)
	if req.URL.Path != "/odata/QueueItems(99)" || req.URL.Query().Get("$select") == "" {
		t.Fatalf("unexpected request %s", req.URL.String())
	}
}

func TestCreateBucketSendsNullStorageFields(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusCreated, `{}`))
	client := fake.client(t)

	identifier, err := client.CreateBucket(context.Background(), testFolder, "reports", "", "")
	if err != nil {
		t.Fatalf("CreateBucket returned error: %v", err)
	}
	if len(identifier) != 36 {
		t.Fatalf("expected generated GUID, got %q", identifier)
	}

	req, body := fake.lastRequest(t)
	if req.Method != http.MethodPost || req.URL.Path != "/odata/Buckets" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	want := map[string]any{
		"Name":              "reports",
		"Description":       "",
		"Identifier":        identifier,
		"StorageProvider":   nil,
		"StorageParameters": nil,
		"StorageContainer":  nil,
		"CredentialStoreId": nil,
		"ExternalName":      nil,
		"Password":          nil,
		"FoldersCount":      float64(0),
		"Id":                float64(0),
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteBucketExpectsNoContent(t *testing.T) {
	fake := newFakeOrchestrator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := fake.client(t)

	err := client.DeleteBucket(context.Background(), testFolder, 4)
	var statusErr *orchestrator.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusOK {
		t.Fatalf("expected status error for 200, got %v", err)
	}
	req, _ := fake.lastRequest(t)
	if req.Method != http.MethodDelete || req.URL.Path != "/odata/Buckets(4)" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
}

func TestUploadBucketFilePutsToWriteURI(t *testing.T) {
	var (
		blobHeader string
		blobAuth   string
		blobBody   string
	)
	blob := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		blobHeader = r.Header.Get("x-ms-blob-type")
		blobAuth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		blobBody = string(data)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(blob.Close)

	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"Uri":"`+blob.URL+`/container/report.csv?sig=secret","Verb":"PUT"}`))
	client := fake.client(t)

	local := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(local, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := client.UploadBucketFile(context.Background(), testFolder, 4, local, "in/report.csv"); err != nil {
		t.Fatalf("UploadBucketFile returned error: %v", err)
	}

	req, _ := fake.lastRequest(t)
	if req.URL.Path != "/odata/Buckets(4)/UiPath.Server.Configuration.OData.GetWriteUri" {
		t.Fatalf("unexpected write uri path %s", req.URL.Path)
	}
	if req.URL.Query().Get("path") != "in/report.csv" || req.URL.Query().Get("expiryInMinutes") != "0" {
		t.Fatalf("unexpected write uri query %s", req.URL.RawQuery)
	}
	if blobHeader != "BlockBlob" {
		t.Fatalf("unexpected blob type header %q", blobHeader)
	}
	if blobAuth != "" {
		t.Fatalf("expected no bearer token on blob upload, got %q", blobAuth)
	}
	if blobBody != "a,b\n1,2\n" {
		t.Fatalf("unexpected uploaded body %q", blobBody)
	}
}

func TestDeleteBucketFileSendsPath(t *testing.T) {
	fake := newFakeOrchestrator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := fake.client(t)

	if err := client.DeleteBucketFile(context.Background(), testFolder, 4, "in/report.csv"); err != nil {
		t.Fatalf("DeleteBucketFile returned error: %v", err)
	}
	req, _ := fake.lastRequest(t)
	if req.URL.Path != "/odata/Buckets(4)/UiPath.Server.Configuration.OData.DeleteFile" || req.URL.Query().Get("path") != "in/report.csv" {
		t.Fatalf("unexpected request %s", req.URL.String())
	}
}

func TestStartJobStrategies(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusCreated, `{"value":[]}`))
	client := fake.client(t)
	ctx := context.Background()

	if err := client.StartJob(ctx, testFolder, "release-key", 0); err != nil {
		t.Fatalf("StartJob returned error: %v", err)
	}
	_, body := fake.lastRequest(t)
	want := map[string]any{"startInfo": map[string]any{
		"ReleaseKey": "release-key",
		"Strategy":   "JobsCount",
		"JobsCount":  float64(1),
		"Source":     "Manual",
	}}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("any-robot body mismatch (-want +got):\n%s", diff)
	}

	if err := client.StartJob(ctx, testFolder, "release-key", 17); err != nil {
		t.Fatalf("StartJob returned error: %v", err)
	}
	req, body := fake.lastRequest(t)
	want = map[string]any{"startInfo": map[string]any{
		"ReleaseKey": "release-key",
		"Strategy":   "Specific",
		"RobotIds":   []any{float64(17)},
		"JobsCount":  float64(0),
		"Source":     "Manual",
	}}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("specific-robot body mismatch (-want +got):\n%s", diff)
	}
	if req.URL.Path != "/odata/Jobs/UiPath.Server.Configuration.OData.StartJobs" {
		t.Fatalf("unexpected path %s", req.URL.Path)
	}
}

func TestStopJobDefaultsToKill(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{}`))
	client := fake.client(t)

	if err := client.StopJob(context.Background(), testFolder, 11, ""); err != nil {
		t.Fatalf("StopJob returned error: %v", err)
	}
	req, body := fake.lastRequest(t)
	if req.URL.Path != "/odata/Jobs(11)/UiPath.Server.Configuration.OData.StopJob" {
		t.Fatalf("unexpected path %s", req.URL.Path)
	}
	if diff := cmp.Diff(map[string]any{"strategy": "2"}, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestAddQueueItemReturnsAcknowledgement(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusCreated, `{"Id":501,"OrganizationUnitId":4242,"QueueDefinitionId":3,"Status":"New"}`))
	client := fake.client(t)

	added, err := client.AddQueueItem(context.Background(), testFolder, "Invoices",
		map[string]any{"InvoiceNo": "INV-1", "Amount": 12.5}, "INV-1", "")
	if err != nil {
		t.Fatalf("AddQueueItem returned error: %v", err)
	}
	if diff := cmp.Diff(&orchestrator.AddedQueueItem{ID: 501, OrganizationUnitID: 4242, QueueDefinitionID: 3}, added); diff != "" {
		t.Fatalf("ack mismatch (-want +got):\n%s", diff)
	}

	req, body := fake.lastRequest(t)
	if req.URL.Query().Get("$select") != "Id,OrganizationUnitId,QueueDefinitionId" {
		t.Fatalf("unexpected $select %q", req.URL.Query().Get("$select"))
	}
	want := map[string]any{"itemData": map[string]any{
		"Name":            "Invoices",
		"Priority":        "Normal",
		"DeferDate":       nil,
		"DueDate":         nil,
		"Reference":       "INV-1",
		"SpecificContent": map[string]any{"InvoiceNo": "INV-1", "Amount": 12.5},
	}}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestAddQueueItemDuplicateReference(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusConflict, `{"message":"duplicate"}`))
	client := fake.client(t)

	added, err := client.AddQueueItem(context.Background(), testFolder, "Invoices", nil, "INV-1", orchestrator.PriorityHigh)
	if added != nil {
		t.Fatalf("expected no acknowledgement, got %+v", added)
	}
	if !errors.Is(err, orchestrator.ErrDuplicateReference) || !errors.Is(err, orchestrator.ErrUnexpectedStatus) {
		t.Fatalf("expected duplicate reference status error, got %v", err)
	}
}

func TestUpdateQueueItemSendsHighPriority(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{}`))
	client := fake.client(t)

	if err := client.UpdateQueueItem(context.Background(), testFolder, "Invoices", 99, map[string]any{"Status": "checked"}); err != nil {
		t.Fatalf("UpdateQueueItem returned error: %v", err)
	}
	req, body := fake.lastRequest(t)
	if req.Method != http.MethodPut || req.URL.Path != "/odata/QueueItems(99)" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	want := map[string]any{
		"Name":            "Invoices",
		"Priority":        "High",
		"SpecificContent": map[string]any{"Status": "checked"},
		"DeferDate":       nil,
		"DueDate":         nil,
		"RiskSlaDate":     nil,
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestListRobotLogsRequiresFilter(t *testing.T) {
	fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[{
		"Id": 1, "JobKey": "a1", "Level": "Info", "WindowsIdentity": "svc", "ProcessName": "Invoices",
		"TimeStamp": "2024-03-01T10:00:00Z", "Message": "started", "RobotName": "bot1", "MachineId": 12
	}]}`))
	client := fake.client(t)

	if _, err := client.ListRobotLogs(context.Background(), testFolder, ""); !errors.Is(err, orchestrator.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	logs, err := client.ListRobotLogs(context.Background(), testFolder, "JobKey eq a1")
	if err != nil {
		t.Fatalf("ListRobotLogs returned error: %v", err)
	}
	if len(logs) != 1 || logs[0].Message != "started" {
		t.Fatalf("unexpected logs %+v", logs)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01T10:00:00Z":        time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		"2024-03-01T10:00:00.5+02:00": time.Date(2024, 3, 1, 8, 0, 0, 500000000, time.UTC),
		"2024-03-01T10:00:00.1234567": time.Date(2024, 3, 1, 10, 0, 0, 123456700, time.UTC),
		"2024-03-01T10:00:00":         time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, err := orchestrator.ParseTimestamp(input)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) returned error: %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", input, got.Time, want)
		}
	}
	if _, err := orchestrator.ParseTimestamp("yesterday"); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestListEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		filter string
		call   func(context.Context, *orchestrator.Client) error
	}{
		{"buckets", "/odata/Buckets", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListBuckets(ctx, testFolder)
			return err
		}},
		{"calendars", "/odata/Calendars", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListCalendars(ctx, testFolder)
			return err
		}},
		{"environments", "/odata/Environments", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListEnvironments(ctx, testFolder)
			return err
		}},
		{"processes", "/odata/Processes", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListProcesses(ctx, testFolder)
			return err
		}},
		{"releases", "/odata/Releases", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListReleases(ctx, testFolder)
			return err
		}},
		{"schedules", "/odata/ProcessSchedules", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListSchedules(ctx, testFolder)
			return err
		}},
		{"robots", "/odata/Robots", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListRobots(ctx, testFolder)
			return err
		}},
		{"queues", "/odata/QueueDefinitions", "", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListQueues(ctx, testFolder)
			return err
		}},
		{"queue items", "/odata/QueueItems", "QueueDefinitionId eq 3", func(ctx context.Context, c *orchestrator.Client) error {
			_, err := c.ListQueueItems(ctx, testFolder, "QueueDefinitionId eq 3")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[]}`))
			client := fake.client(t)

			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("list returned error: %v", err)
			}
			req, _ := fake.lastRequest(t)
			if req.URL.Path != tt.path {
				t.Fatalf("path = %q, want %q", req.URL.Path, tt.path)
			}
			if req.URL.Query().Get("$select") == "" {
				t.Fatal("expected $select to be set")
			}
			if got := req.URL.Query().Get("$filter"); got != tt.filter {
				t.Fatalf("$filter = %q, want %q", got, tt.filter)
			}
			if got := req.Header.Get("X-UIPATH-OrganizationUnitID"); got != testFolder {
				t.Fatalf("unexpected folder header %q", got)
			}
		})
	}
}

func TestListDecodesPopulatedRecords(t *testing.T) {
	published := orchestrator.Timestamp{Time: time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)}
	tests := []struct {
		name string
		body string
		call func(context.Context, *orchestrator.Client) (any, error)
		want any
	}{
		{
			name: "calendars",
			body: `{"Id":4,"Name":"Holidays","ExcludedDates":["2024-12-25T00:00:00Z"],"TimeZoneId":null}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListCalendars(ctx, testFolder)
			},
			want: []orchestrator.Calendar{{ID: 4, Name: "Holidays", ExcludedDates: []any{"2024-12-25T00:00:00Z"}}},
		},
		{
			name: "environments",
			body: `{"Id":2,"Name":"Production","Type":"Prod","Description":null}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListEnvironments(ctx, testFolder)
			},
			want: []orchestrator.Environment{{ID: 2, Name: "Production", Type: "Prod"}},
		},
		{
			name: "processes",
			body: `{"Id":"Invoices","Key":"Invoices:1.0.3","Version":"1.0.3","Published":"2024-02-10T08:30:00Z","Authors":"finance","Description":null}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListProcesses(ctx, testFolder)
			},
			want: []orchestrator.Process{{ID: "Invoices", Key: "Invoices:1.0.3", Version: "1.0.3", Published: published, Authors: "finance"}},
		},
		{
			name: "releases",
			body: `{"Id":12,"Key":"rel-key","ProcessKey":"Invoices","ProcessVersion":"1.0.3","EnvironmentId":2}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListReleases(ctx, testFolder)
			},
			want: []orchestrator.Release{{ID: 12, Key: "rel-key", ProcessKey: "Invoices", ProcessVersion: "1.0.3", EnvironmentID: "2"}},
		},
		{
			name: "schedules",
			body: `{"Id":8,"Name":"Nightly","PackageName":"Invoices","EnvironmentId":"2","EnvironmentName":null,` +
				`"StartProcessCron":"0 0 2 1/1 * ? *","StartProcessCronSummary":"Every day at 02:00","Enabled":true}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListSchedules(ctx, testFolder)
			},
			want: []orchestrator.Schedule{{
				ID:                      8,
				Name:                    "Nightly",
				PackageName:             "Invoices",
				EnvironmentID:           "2",
				StartProcessCron:        "0 0 2 1/1 * ? *",
				StartProcessCronSummary: "Every day at 02:00",
				Enabled:                 true,
			}},
		},
		{
			name: "robots",
			body: `{"Id":5,"MachineName":null,"Name":"bot-01","Username":"corp\\bot01","Type":"Unattended","RobotEnvironments":"Production"}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListRobots(ctx, testFolder)
			},
			want: []orchestrator.Robot{{ID: 5, Name: "bot-01", Username: `corp\bot01`, Type: "Unattended", RobotEnvironments: "Production"}},
		},
		{
			name: "robot logs",
			body: `{"Id":70,"JobKey":"a1","Level":"Info","WindowsIdentity":"corp\\bot01","ProcessName":"Invoices_Prod",` +
				`"TimeStamp":"2024-03-01T10:00:06Z","Message":"Invoices execution started","RobotName":"bot-01","MachineId":9}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListRobotLogs(ctx, testFolder, "JobKey eq 'a1'")
			},
			want: []orchestrator.RobotLog{{
				ID:              70,
				JobKey:          "a1",
				Level:           "Info",
				WindowsIdentity: `corp\bot01`,
				ProcessName:     "Invoices_Prod",
				TimeStamp:       "2024-03-01T10:00:06Z",
				Message:         "Invoices execution started",
				RobotName:       "bot-01",
				MachineID:       9,
			}},
		},
		{
			name: "roles",
			body: `{"Id":1,"Name":"Robot","DisplayName":"Robot","Type":"Mixed"}`,
			call: func(ctx context.Context, c *orchestrator.Client) (any, error) {
				return c.ListRoles(ctx)
			},
			want: []orchestrator.Role{{ID: 1, Name: "Robot", DisplayName: "Robot", Type: "Mixed"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeOrchestrator(t, respondJSON(http.StatusOK, `{"value":[`+tt.body+`]}`))
			client := fake.client(t)

			got, err := tt.call(context.Background(), client)
			if err != nil {
				t.Fatalf("list returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
