package dispatch

import "fmt"

// CallKind identifies a runtime call constructor.
type CallKind string

const (
	// Balances
	BalancesTransfer          CallKind = "transfer"
	BalancesSetBalance        CallKind = "set_balance"
	BalancesForceTransfer     CallKind = "force_transfer"
	BalancesTransferKeepAlive CallKind = "transfer_keep_alive"

	// Timestamp
	TimestampSet CallKind = "timestamp_set"

	// Staking
	StakingBond             CallKind = "staking_bond"
	StakingBondExtra        CallKind = "staking_bond_extra"
	StakingUnbond           CallKind = "staking_unbond"
	StakingWithdrawUnbonded CallKind = "staking_withdraw_unbonded"
	StakingValidate         CallKind = "staking_validate"
	StakingNominate         CallKind = "staking_nominate"

	// System
	SystemSetCode              CallKind = "system_set_code"
	SystemSetCodeWithoutChecks CallKind = "system_set_code_without_checks"
	SystemSetStorage           CallKind = "system_set_storage"
	SystemRemark               CallKind = "system_remark"

	// Session
	SessionSetKeys   CallKind = "session_set_keys"
	SessionPurgeKeys CallKind = "session_purge_keys"

	// Democracy
	DemocracyPropose       CallKind = "democracy_propose"
	DemocracyVote          CallKind = "democracy_vote"
	DemocracyEnactProposal CallKind = "democracy_enact_proposal"

	// Elections (phragmen)
	ElectionVote              CallKind = "election_vote"
	ElectionSubmitCandidacy   CallKind = "election_submit_candidacy"
	ElectionRenounceCandidacy CallKind = "election_renounce_candidacy"

	// Treasury
	TreasuryProposeSpend    CallKind = "treasury_propose_spend"
	TreasuryApproveProposal CallKind = "treasury_approve_proposal"
	TreasuryTip             CallKind = "treasury_tip"
)

var allCallKinds = []CallKind{
	BalancesTransfer,
	BalancesSetBalance,
	BalancesForceTransfer,
	BalancesTransferKeepAlive,
	TimestampSet,
	StakingBond,
	StakingBondExtra,
	StakingUnbond,
	StakingWithdrawUnbonded,
	StakingValidate,
	StakingNominate,
	SystemSetCode,
	SystemSetCodeWithoutChecks,
	SystemSetStorage,
	SystemRemark,
	SessionSetKeys,
	SessionPurgeKeys,
	DemocracyPropose,
	DemocracyVote,
	DemocracyEnactProposal,
	ElectionVote,
	ElectionSubmitCandidacy,
	ElectionRenounceCandidacy,
	TreasuryProposeSpend,
	TreasuryApproveProposal,
	TreasuryTip,
}

// AllCallKinds returns every known call kind in a stable order.
func AllCallKinds() []CallKind {
	kinds := make([]CallKind, len(allCallKinds))
	copy(kinds, allCallKinds)
	return kinds
}

// ParseCallKind maps an identifier to a known call kind.
func ParseCallKind(s string) (CallKind, error) {
	kind := CallKind(s)
	if _, ok := table[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCallKind, s)
	}
	return kind, nil
}

func (k CallKind) String() string {
	return string(k)
}
