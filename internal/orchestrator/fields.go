package orchestrator

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString holds identifiers the vendor serialises either as strings or as numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = FlexString(raw)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*s = FlexString(number.String())
	return nil
}

// Int returns the value as an integer, or 0 when it is not numeric.
func (s FlexString) Int() int64 {
	n, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// RobotVersion collapses the vendor's list of {"Version": ...} objects to the first
// version string. Anything other than a non-empty list yields "".
type RobotVersion string

func (v *RobotVersion) UnmarshalJSON(data []byte) error {
	*v = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	var first struct {
		Version *string `json:"Version"`
	}
	if err := json.Unmarshal(entries[0], &first); err != nil || first.Version == nil {
		return nil
	}
	*v = RobotVersion(*first.Version)
	return nil
}
