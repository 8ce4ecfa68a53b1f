package kernel

import "fmt"

type Email string

func (e Email) String() string { return string(e) }

type Phone string

func (p Phone) String() string { return string(p) }

type FullName string

type Gender string

type Nationality string

type Designation string

type CompanyName string

type Industry string

type JobDescription string

// UniqueID is a human-readable sequential identifier such as APP-000123,
// minted once from a shared persistent counter and never reassigned.
type UniqueID string

func (u UniqueID) String() string { return string(u) }
func (u UniqueID) IsEmpty() bool  { return string(u) == "" }

// FormatUniqueID renders a counter value as PREFIX-000123.
func FormatUniqueID(prefix string, sequence int64) UniqueID {
	return UniqueID(fmt.Sprintf("%s-%06d", prefix, sequence))
}
