package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DelegationGrant allows a delegate to act for the account owner until the
// expiry (unix seconds).
type DelegationGrant struct {
	Delegate string `json:"delegate"`
	Expiry   int64  `json:"expiry"`
}

// IsActive reports whether the grant is usable at the given time.
func (g DelegationGrant) IsActive(now int64) bool {
	return now < g.Expiry
}

// RecoveryProposal is a pending guardian-initiated ownership change.
type RecoveryProposal struct {
	Id            string   `json:"id"`
	ProposedOwner string   `json:"proposed_owner"`
	Confirmations []string `json:"confirmations"`
	Deadline      int64    `json:"deadline"`
}

// HasConfirmed reports whether the guardian already confirmed the proposal.
func (p RecoveryProposal) HasConfirmed(guardian string) bool {
	for _, c := range p.Confirmations {
		if c == guardian {
			return true
		}
	}
	return false
}

// Account is an orchestration account: an owner, a fixed guardian set for
// social recovery, delegation grants, and at most one pending recovery.
type Account struct {
	Owner       string            `json:"owner"`
	Guardians   []string          `json:"guardians"`
	Delegations []DelegationGrant `json:"delegations"`
	Recovery    *RecoveryProposal `json:"recovery,omitempty"`
}

// Validate checks the structural invariants of an account record.
func (a Account) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Owner); err != nil {
		return ErrInvalidGuardians.Wrapf("invalid owner address: %v", err)
	}
	if len(a.Guardians) != GuardianCount {
		return ErrInvalidGuardians.Wrapf("expected %d guardians, got %d", GuardianCount, len(a.Guardians))
	}
	seen := make(map[string]struct{}, GuardianCount)
	for _, g := range a.Guardians {
		if _, err := sdk.AccAddressFromBech32(g); err != nil {
			return ErrInvalidGuardians.Wrapf("invalid guardian address %q: %v", g, err)
		}
		if g == a.Owner {
			return ErrInvalidGuardians.Wrap("owner cannot be their own guardian")
		}
		if _, ok := seen[g]; ok {
			return ErrInvalidGuardians.Wrapf("duplicate guardian %s", g)
		}
		seen[g] = struct{}{}
	}
	return nil
}

// IsGuardian reports whether addr is in the guardian set.
func (a Account) IsGuardian(addr string) bool {
	for _, g := range a.Guardians {
		if g == addr {
			return true
		}
	}
	return false
}

// FindDelegation returns the grant for delegate, if any.
func (a Account) FindDelegation(delegate string) (DelegationGrant, bool) {
	for _, d := range a.Delegations {
		if d.Delegate == delegate {
			return d, true
		}
	}
	return DelegationGrant{}, false
}

// IsAuthorized reports whether sender may act for the account at the given
// time: the owner always, a delegate only while the grant is unexpired.
func (a Account) IsAuthorized(sender string, now int64) bool {
	if sender == a.Owner {
		return true
	}
	grant, found := a.FindDelegation(sender)
	return found && grant.IsActive(now)
}
