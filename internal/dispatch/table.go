package dispatch

import (
	"fmt"

	"github.com/eigerco/weights/internal/weight"
)

// ScalingSource names the input a scaling term is multiplied by.
type ScalingSource uint8

const (
	ScaleNone       ScalingSource = iota
	ScaleItemCount                // length of the call's item list
	ScaleKeySlots                 // configured number of session key slots
	ScaleMaxTippers               // configured upper bound on tippers
)

func (s ScalingSource) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleItemCount:
		return "items"
	case ScaleKeySlots:
		return "key_slots"
	case ScaleMaxTippers:
		return "max_tippers"
	default:
		return fmt.Sprintf("ScalingSource(%d)", uint8(s))
	}
}

// Scaling is the input dependent part of a call's weight. For a scaling input n it adds
// n*PerUnit, n*ReadsPerUnit reads and n*WritesPerUnit writes.
type Scaling struct {
	Source        ScalingSource
	PerUnit       weight.Weight
	ReadsPerUnit  uint32
	WritesPerUnit uint32
}

// CallWeightSpec is the weight formula of a single call kind.
type CallWeightSpec struct {
	Base    weight.Weight
	Reads   uint32
	Writes  uint32
	Class   weight.DispatchClass
	Pays    weight.Pays
	Scaling Scaling

	// Ceiling calls are charged the maximum block weight, whatever their arguments.
	Ceiling bool
}

// Base execution costs, excluding storage access.
const (
	TransferBaseWeight          weight.Weight = 70_000_000
	SetBalanceBaseWeight        weight.Weight = 35_000_000
	ForceTransferBaseWeight     weight.Weight = 70_000_000
	TransferKeepAliveBaseWeight weight.Weight = 50_000_000
	TimestampSetBaseWeight      weight.Weight = 9_000_000

	StakingBondWeight             weight.Weight = 500_000_000
	StakingBondExtraWeight        weight.Weight = 500_000_000
	StakingUnbondWeight           weight.Weight = 400_000_000
	StakingWithdrawUnbondedWeight weight.Weight = 400_000_000
	StakingValidateWeight         weight.Weight = 750_000_000
	StakingNominateWeight         weight.Weight = 750_000_000

	SetStorageWeightPerItem weight.Weight = 600_000
	RemarkWeight            weight.Weight = 700_000

	SetKeysBaseWeight   weight.Weight = 200_000_000
	PurgeKeysBaseWeight weight.Weight = 120_000_000

	DemocracyProposeWeight weight.Weight = 5_000_000_000
	DemocracyVoteWeight    weight.Weight = 200_000_000

	ElectionVoteWeight              weight.Weight = 100_000_000
	ElectionSubmitCandidacyWeight   weight.Weight = 500_000_000
	ElectionRenounceCandidacyWeight weight.Weight = 2_000_000_000

	ProposeSpendBaseWeight    weight.Weight = 120_000_000
	ApproveProposalBaseWeight weight.Weight = 34_000_000
	TipBaseWeight             weight.Weight = 68_000_000
	TipWeightPerTipper        weight.Weight = 2_000_000
)

var table = map[CallKind]CallWeightSpec{
	BalancesTransfer:          {Base: TransferBaseWeight, Reads: 1, Writes: 1},
	BalancesSetBalance:        {Base: SetBalanceBaseWeight, Reads: 1, Writes: 1},
	BalancesForceTransfer:     {Base: ForceTransferBaseWeight, Reads: 2, Writes: 2},
	BalancesTransferKeepAlive: {Base: TransferKeepAliveBaseWeight, Reads: 1, Writes: 1},

	TimestampSet: {Base: TimestampSetBaseWeight, Reads: 2, Writes: 1},

	StakingBond:             {Base: StakingBondWeight},
	StakingBondExtra:        {Base: StakingBondExtraWeight},
	StakingUnbond:           {Base: StakingUnbondWeight},
	StakingWithdrawUnbonded: {Base: StakingWithdrawUnbondedWeight},
	StakingValidate:         {Base: StakingValidateWeight},
	StakingNominate:         {Base: StakingNominateWeight},

	SystemSetCode:              {Class: weight.Operational, Ceiling: true},
	SystemSetCodeWithoutChecks: {Class: weight.Operational, Ceiling: true},
	SystemSetStorage: {
		Class: weight.Operational,
		Scaling: Scaling{
			Source:        ScaleItemCount,
			PerUnit:       SetStorageWeightPerItem,
			WritesPerUnit: 1,
		},
	},
	SystemRemark: {Base: RemarkWeight},

	SessionSetKeys: {
		Base:   SetKeysBaseWeight,
		Reads:  2,
		Writes: 1,
		Scaling: Scaling{
			Source:        ScaleKeySlots,
			ReadsPerUnit:  1,
			WritesPerUnit: 1,
		},
	},
	SessionPurgeKeys: {
		Base:   PurgeKeysBaseWeight,
		Reads:  2,
		Writes: 1,
		Scaling: Scaling{
			Source:        ScaleKeySlots,
			WritesPerUnit: 1,
		},
	},

	DemocracyPropose:       {Base: DemocracyProposeWeight},
	DemocracyVote:          {Base: DemocracyVoteWeight},
	DemocracyEnactProposal: {Class: weight.Normal, Ceiling: true},

	ElectionVote:              {Base: ElectionVoteWeight},
	ElectionSubmitCandidacy:   {Base: ElectionSubmitCandidacyWeight},
	ElectionRenounceCandidacy: {Base: ElectionRenounceCandidacyWeight, Class: weight.Operational},

	TreasuryProposeSpend:    {Base: ProposeSpendBaseWeight, Reads: 1, Writes: 2},
	TreasuryApproveProposal: {Base: ApproveProposalBaseWeight, Reads: 2, Writes: 1, Class: weight.Operational},
	TreasuryTip: {
		Base:   TipBaseWeight,
		Reads:  2,
		Writes: 1,
		Scaling: Scaling{
			Source:  ScaleMaxTippers,
			PerUnit: TipWeightPerTipper,
		},
	},
}

// Lookup returns the weight formula of a call kind.
func Lookup(kind CallKind) (CallWeightSpec, error) {
	spec, ok := table[kind]
	if !ok {
		return CallWeightSpec{}, fmt.Errorf("%w: %q", ErrUnknownCallKind, kind)
	}
	return spec, nil
}

type ValidationError struct {
	Kind    CallKind
	Message string
}

type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidateTable checks the weight table for entries that cannot be right,
// such as ceiling calls with additive terms or calls that cost nothing.
func ValidateTable() *ValidationResult {
	result := &ValidationResult{Valid: true}
	for _, kind := range allCallKinds {
		spec, ok := table[kind]
		if !ok {
			result.addError(kind, "no weight entry")
			continue
		}
		result.validateSpec(kind, spec)
	}
	if len(table) != len(allCallKinds) {
		result.addError("", fmt.Sprintf("table has %d entries, %d call kinds known", len(table), len(allCallKinds)))
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}
	return result
}

func (vr *ValidationResult) validateSpec(kind CallKind, spec CallWeightSpec) {
	if spec.Ceiling {
		if spec.Base != 0 || spec.Reads != 0 || spec.Writes != 0 || spec.Scaling.Source != ScaleNone {
			vr.addError(kind, "ceiling call has additive terms")
		}
		return
	}

	s := spec.Scaling
	if s.Source == ScaleNone && (s.PerUnit != 0 || s.ReadsPerUnit != 0 || s.WritesPerUnit != 0) {
		vr.addError(kind, "scaling terms without a scaling source")
	}
	if s.Source != ScaleNone && s.PerUnit == 0 && s.ReadsPerUnit == 0 && s.WritesPerUnit == 0 {
		vr.addError(kind, fmt.Sprintf("scaling source %s has no terms", s.Source))
	}
	if s.Source > ScaleMaxTippers {
		vr.addError(kind, fmt.Sprintf("unknown scaling source %s", s.Source))
	}
	if spec.Base == 0 && spec.Reads == 0 && spec.Writes == 0 && s.Source == ScaleNone {
		vr.addError(kind, "call has zero weight")
	}
}

func (vr *ValidationResult) addError(kind CallKind, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Kind: kind, Message: message})
}

func (vr *ValidationResult) ErrorsAsString() string {
	if vr.Valid {
		return ""
	}
	result := fmt.Sprintf("Validation failed (%d errors):\n", len(vr.Errors))
	for _, err := range vr.Errors {
		result += fmt.Sprintf("  [%s] %s\n", err.Kind, err.Message)
	}
	return result
}
