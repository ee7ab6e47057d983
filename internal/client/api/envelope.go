package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SuccessCode is the numeric success marker used by the backend.
const SuccessCode = 111

// SuccessStatus is the status-string success marker.
const SuccessStatus = "OK"

// ProfileUpdatedDescription is the fixed description update_user answers with.
const ProfileUpdatedDescription = "Profile updated successfully"

// Operation names one backend call.
type Operation string

const (
	OpRegister      Operation = "register"
	OpLogin         Operation = "login"
	OpGetProfile    Operation = "get_profile"
	OpUpdateProfile Operation = "update_profile"
	OpUserCount     Operation = "user_count"
	OpUsersList     Operation = "users_list"
	OpDeleteUser    Operation = "delete_user"
	OpRanks         Operation = "ranks"
	OpRoles         Operation = "roles"
)

// Code is the envelope's numeric code. Some backends send it as a string, so
// both 111 and "111" decode to the same value.
type Code int

func (c *Code) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("code %q is not numeric", s)
		}
		*c = Code(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Code(n)
	return nil
}

// Envelope is the JSON wrapper every backend response uses.
type Envelope struct {
	Code        *Code           `json:"code"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
	Message     string          `json:"message,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether the envelope carries a non-null payload.
func (e *Envelope) HasData() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// Text picks the server-supplied text to show the user.
func (e *Envelope) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Description
}

type ruleKind int

const (
	byCode ruleKind = iota
	byStatus
	byDescription
)

// Rule decides whether an envelope reports success.
type Rule struct {
	kind  ruleKind
	code  int
	value string
}

func ByCode(code int) Rule { return Rule{kind: byCode, code: code} }
func ByStatus(status string) Rule { return Rule{kind: byStatus, value: status} }
func ByDescription(description string) Rule { return Rule{kind: byDescription, value: description} }

func (r Rule) Succeeded(e *Envelope) bool {
	switch r.kind {
	case byStatus:
		return e.Status == r.value
	case byDescription:
		return e.Description == r.value
	default:
		return e.Code != nil && int(*e.Code) == r.code
	}
}

func (r Rule) String() string {
	switch r.kind {
	case byStatus:
		return "status==" + r.value
	case byDescription:
		return "description==" + r.value
	default:
		return "code==" + strconv.Itoa(r.code)
	}
}

// Contract maps each operation to its success rule. Operations missing from
// the map fall back to ByCode(SuccessCode).
type Contract map[Operation]Rule

// DefaultContract matches the reference backend.
func DefaultContract() Contract {
	return Contract{
		OpRegister:      ByCode(SuccessCode),
		OpLogin:         ByCode(SuccessCode),
		OpGetProfile:    ByCode(SuccessCode),
		OpUpdateProfile: ByDescription(ProfileUpdatedDescription),
		OpUserCount:     ByStatus(SuccessStatus),
		OpUsersList:     ByStatus(SuccessStatus),
		OpDeleteUser:    ByCode(SuccessCode),
		OpRanks:         ByStatus(SuccessStatus),
		OpRoles:         ByStatus(SuccessStatus),
	}
}

func (c Contract) rule(op Operation) Rule {
	if r, ok := c[op]; ok {
		return r
	}
	return ByCode(SuccessCode)
}

// Result is the normalised outcome of a call that reached the backend.
type Result[T any] struct {
	OK      bool
	Data    T
	Message string
}

// Empty is the payload type of calls whose success carries no data.
type Empty struct{}
