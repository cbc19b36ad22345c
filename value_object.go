package makespan

import (
	"regexp"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

type ID struct {
	value uuid.UUID
}

func NewID() ID {
	v := ID{value: uuid.Must(uuid.NewV4())}
	if err := v.validate(); err != nil {
		panic(err)
	}
	return v
}

func ParseID(s string) (ID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return ID{}, errors.Wrap(err, "Parse id")
	}
	v := ID{value: u}
	return v, v.validate()
}

var emptyUUIDRegexp = regexp.MustCompile(`^[0-]+$`)

func (v ID) validate() error {
	isEmpty := emptyUUIDRegexp.MatchString(v.String())
	if isEmpty {
		return errors.New("Empty uuid found")
	}
	if v.value.Version() != uuid.V4 {
		return errors.New("Invalid uuid version")
	}
	return nil
}

func (v ID) String() string {
	return v.value.String()
}

func (v ID) IsEqual(v2 ID) bool {
	return v.String() == v2.String()
}

type ScheduleID = ID

func NewScheduleID() ScheduleID {
	return ScheduleID(NewID())
}

func ParseScheduleID(s string) (ScheduleID, error) {
	v, err := ParseID(s)
	return ScheduleID(v), err
}

type EvaluationID = ID

func NewEvaluationID() EvaluationID {
	return EvaluationID(NewID())
}

func ParseEvaluationID(s string) (EvaluationID, error) {
	v, err := ParseID(s)
	return EvaluationID(v), err
}

// JobName identifies a job within one scheduling run. The name "0" is
// reserved for the dummy job that stands in for "nothing ran before".
type JobName string

const DummyJobName JobName = "0"

func ParseJobName(s string) (JobName, error) {
	if s == "" {
		return JobName(""), errors.New("Empty job name found")
	}
	return JobName(s), nil
}

func (v JobName) IsDummy() bool {
	return v == DummyJobName
}

func (v JobName) String() string {
	return string(v)
}

type MachineID string

func ParseMachineID(s string) (MachineID, error) {
	if s == "" {
		return MachineID(""), errors.New("Empty machine id found")
	}
	return MachineID(s), nil
}

func (v MachineID) String() string {
	return string(v)
}

// Policy selects how a job's predecessor on its machine is resolved.
type Policy string

const (
	// PolicyOrdered resolves predecessors against a pre-simulation
	// snapshot, honoring the fixed order implied by the input start times.
	PolicyOrdered Policy = "Ordered"
	// PolicyBin resolves predecessors against the live job set, always
	// picking the most recently finished job on the machine so far.
	PolicyBin Policy = "Bin"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyOrdered, PolicyBin:
		return Policy(s), nil
	}
	return Policy(""), wrapError(ErrPolicy, "%s", s)
}

// LPInstance carries the job and machine universe of a solved scheduling
// instance. Jobs includes the dummy name "0" at the head, matching the
// dimensions the setup-time table is built over.
type LPInstance struct {
	Jobs     []JobName
	Machines []MachineID
}

func NewLPInstance(jobs []JobName, machines []MachineID) LPInstance {
	if len(jobs) == 0 || !jobs[0].IsDummy() {
		jobs = append([]JobName{DummyJobName}, jobs...)
	}
	return LPInstance{Jobs: jobs, Machines: machines}
}

type Timestamp int64

var nowFn = time.Now

const TimestampZero = Timestamp(0)

func NewTimestamp() Timestamp {
	v := nowFn().UnixNano() / 1e6
	return Timestamp(v)
}

func (v Timestamp) Value() int64 {
	return int64(v)
}

func ParseTimestamp(v int64) Timestamp {
	return Timestamp(v)
}

func (v Timestamp) IsEqual(v2 Timestamp) bool {
	return v == v2
}

type Map map[string]interface{}
