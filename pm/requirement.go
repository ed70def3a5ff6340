package pm

// A MasterID identifies an independent processing agent that can hold
// requirements on slave resources.
type MasterID int

// A RequirementRecord captures the capability level that one master
// currently needs from one slave. One record exists per (master, slave)
// pair that has declared interest.
type RequirementRecord struct {
	Master MasterID
	Caps   Capability
}

// A RequirementSet holds the live requirement records of one slave, in
// attach order. It is owned by the slave and mutated only by the external
// requirement-management collaborator; the transition engine reads it at
// most for diagnostics.
type RequirementSet struct {
	records []RequirementRecord
}

// Require creates the record for master if it does not exist and sets the
// capabilities that master needs.
func (s *RequirementSet) Require(master MasterID, caps Capability) {
	for i := range s.records {
		if s.records[i].Master == master {
			s.records[i].Caps = caps
			return
		}
	}

	s.records = append(s.records, RequirementRecord{
		Master: master,
		Caps:   caps,
	})
}

// Release destroys the record for master. Releasing a master that holds no
// record is a no-op.
func (s *RequirementSet) Release(master MasterID) {
	for i := range s.records {
		if s.records[i].Master == master {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// Get returns the capabilities master currently requires. The second
// return value is false if master holds no record.
func (s *RequirementSet) Get(master MasterID) (Capability, bool) {
	for _, r := range s.records {
		if r.Master == master {
			return r.Caps, true
		}
	}

	return 0, false
}

// Records returns a copy of the live records in attach order.
func (s *RequirementSet) Records() []RequirementRecord {
	out := make([]RequirementRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of live records.
func (s *RequirementSet) Len() int {
	return len(s.records)
}

// Max returns the union of the capabilities required across all live
// records, so that no master's requirement is violated by a transition
// chosen for another master.
func (s *RequirementSet) Max() Capability {
	var caps Capability
	for _, r := range s.records {
		caps |= r.Caps
	}

	return caps
}
