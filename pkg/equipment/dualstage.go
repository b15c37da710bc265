package equipment

// ResolveDualStage materializes every dual-stage composite in the amplifier
// table by copying the referenced preamp and booster records onto the
// composite. It runs once, after every entry has been transformed.
//
// All references are checked before any entry is mutated, so a resolution
// failure leaves the table untouched. Resolution is idempotent: re-running
// it overwrites the stage copies with identical ones. Composites that
// reference other composites are outside the contract; the referenced
// record is copied in whatever state it holds.
func ResolveDualStage(amps map[string]*Amp) error {
	for name, amp := range amps {
		if amp.NF.Kind != NFModelDualStage {
			continue
		}
		ds := amp.NF.DualStage
		if _, ok := amps[ds.PreampVariety]; !ok {
			return &UnresolvedReferenceError{Composite: name, Stage: "preamp", Missing: ds.PreampVariety}
		}
		if _, ok := amps[ds.BoosterVariety]; !ok {
			return &UnresolvedReferenceError{Composite: name, Stage: "booster", Missing: ds.BoosterVariety}
		}
	}

	for _, amp := range amps {
		if amp.NF.Kind != NFModelDualStage {
			continue
		}
		ds := amp.NF.DualStage
		amp.Preamp = amps[ds.PreampVariety].Clone()
		amp.Booster = amps[ds.BoosterVariety].Clone()
	}
	return nil
}
