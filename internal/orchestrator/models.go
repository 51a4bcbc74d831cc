package orchestrator

// Records mirror the vendor field names through their json tags. Fields tagged
// `schema:"optional"` may be missing or null in a payload; every other field must
// be present and non-null.

// Asset is a folder-scoped stored value.
type Asset struct {
	ID                 int64  `json:"Id"`
	Name               string `json:"Name"`
	ExternalName       string `json:"ExternalName" schema:"optional"`
	HasDefaultValue    bool   `json:"HasDefaultValue"`
	Value              string `json:"Value"`
	ValueScope         string `json:"ValueScope"`
	ValueType          string `json:"ValueType"`
	IntValue           int64  `json:"IntValue"`
	StringValue        string `json:"StringValue"`
	BoolValue          bool   `json:"BoolValue"`
	CredentialUsername string `json:"CredentialUsername"`
	CredentialStoreID  int64  `json:"CredentialStoreId" schema:"optional"`
	CanBeDeleted       bool   `json:"CanBeDeleted"`
	Description        string `json:"Description" schema:"optional"`
}

// Bucket is a storage bucket.
type Bucket struct {
	ID          int64  `json:"Id"`
	Identifier  string `json:"Identifier"`
	Name        string `json:"Name"`
	Description string `json:"Description" schema:"optional"`
}

// Calendar is a scheduling calendar with excluded dates.
type Calendar struct {
	ID            int64  `json:"Id"`
	Name          string `json:"Name"`
	ExcludedDates []any  `json:"ExcludedDates"`
	TimeZoneID    string `json:"TimeZoneId" schema:"optional"`
}

// Environment groups robots.
type Environment struct {
	ID          int64  `json:"Id"`
	Name        string `json:"Name"`
	Type        string `json:"Type"`
	Description string `json:"Description" schema:"optional"`
}

// Job is an execution of a process release.
type Job struct {
	ID                 int64     `json:"Id"`
	Key                string    `json:"Key"`
	ReleaseName        string    `json:"ReleaseName"`
	HostMachineName    string    `json:"HostMachineName" schema:"optional"`
	Type               string    `json:"Type"`
	StartingScheduleID int64     `json:"StartingScheduleId" schema:"optional"`
	CreationTime       Timestamp `json:"CreationTime" schema:"optional"`
	StartTime          Timestamp `json:"StartTime" schema:"optional"`
	EndTime            Timestamp `json:"EndTime" schema:"optional"`
	State              string    `json:"State"`
	Source             string    `json:"Source"`
}

// Machine is a host registered with Orchestrator.
type Machine struct {
	ID                 int64        `json:"Id"`
	Name               string       `json:"Name"`
	Description        string       `json:"Description" schema:"optional"`
	Type               string       `json:"Type"`
	NonProductionSlots int64        `json:"NonProductionSlots"`
	UnattendedSlots    int64        `json:"UnattendedSlots"`
	RobotVersions      RobotVersion `json:"RobotVersions" schema:"optional"`
}

// Process is a published automation package.
type Process struct {
	ID          string    `json:"Id"`
	Key         string    `json:"Key"`
	Version     string    `json:"Version"`
	Published   Timestamp `json:"Published"`
	Authors     string    `json:"Authors"`
	Description string    `json:"Description" schema:"optional"`
}

// Queue is a queue definition.
type Queue struct {
	ID          int64  `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"Description" schema:"optional"`
}

// QueueItem is a transaction stored in a queue.
type QueueItem struct {
	ID                int64     `json:"Id"`
	QueueDefinitionID int64     `json:"QueueDefinitionId"`
	Status            string    `json:"Status"`
	Reference         string    `json:"Reference"`
	CreationTime      Timestamp `json:"CreationTime"`
	StartProcessing   Timestamp `json:"StartProcessing" schema:"optional"`
	EndProcessing     Timestamp `json:"EndProcessing" schema:"optional"`
	RetryNumber       int64     `json:"RetryNumber"`
	SpecificData      string    `json:"SpecificData"`
}

// AddedQueueItem is the acknowledgement returned when a queue item is created.
type AddedQueueItem struct {
	ID                 int64 `json:"Id"`
	OrganizationUnitID int64 `json:"OrganizationUnitId"`
	QueueDefinitionID  int64 `json:"QueueDefinitionId"`
}

// Release binds a process version to an environment.
type Release struct {
	ID             int64      `json:"Id"`
	Key            string     `json:"Key"`
	ProcessKey     string     `json:"ProcessKey"`
	ProcessVersion string     `json:"ProcessVersion"`
	EnvironmentID  FlexString `json:"EnvironmentId" schema:"optional"`
}

// Robot is a robot account.
type Robot struct {
	ID                int64  `json:"Id"`
	MachineName       string `json:"MachineName" schema:"optional"`
	Name              string `json:"Name"`
	Username          string `json:"Username"`
	Type              string `json:"Type"`
	RobotEnvironments string `json:"RobotEnvironments"`
}

// RobotLog is a log line emitted by a robot during a job.
type RobotLog struct {
	ID              int64  `json:"Id"`
	JobKey          string `json:"JobKey"`
	Level           string `json:"Level"`
	WindowsIdentity string `json:"WindowsIdentity"`
	ProcessName     string `json:"ProcessName"`
	TimeStamp       string `json:"TimeStamp"`
	Message         string `json:"Message"`
	RobotName       string `json:"RobotName"`
	MachineID       int64  `json:"MachineId"`
}

// Role is a tenant-wide permission role.
type Role struct {
	ID          int64  `json:"Id"`
	Name        string `json:"Name"`
	DisplayName string `json:"DisplayName"`
	Type        string `json:"Type"`
}

// Schedule is a process schedule.
type Schedule struct {
	ID                      int64      `json:"Id"`
	Name                    string     `json:"Name"`
	PackageName             string     `json:"PackageName"`
	EnvironmentID           FlexString `json:"EnvironmentId" schema:"optional"`
	EnvironmentName         string     `json:"EnvironmentName" schema:"optional"`
	StartProcessCron        string     `json:"StartProcessCron"`
	StartProcessCronSummary string     `json:"StartProcessCronSummary"`
	Enabled                 bool       `json:"Enabled"`
}

// Session is a robot session on a machine.
type Session struct {
	ID                 int64      `json:"Id"`
	MachineID          FlexString `json:"MachineId" schema:"optional"`
	HostMachineName    string     `json:"HostMachineName"`
	MachineName        string     `json:"MachineName" schema:"optional"`
	State              string     `json:"State"`
	ReportingTime      string     `json:"ReportingTime"`
	OrganizationUnitID FlexString `json:"OrganizationUnitId" schema:"optional"`
	FolderName         string     `json:"FolderName" schema:"optional"`
}

// Priority is a queue item priority.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

// StopStrategy selects how StopJob terminates a running job.
type StopStrategy string

const (
	StopSoft StopStrategy = "1"
	StopKill StopStrategy = "2"
)
