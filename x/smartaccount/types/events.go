package types

// Event types for the smartaccount module
const (
	EventTypeAccountRegistered = "smartaccount_registered"
	EventTypeSwapAndMint       = "smartaccount_swap_and_mint"
	EventTypeRedeemAndSwap     = "smartaccount_redeem_and_swap"
	EventTypeBatchExecuted     = "smartaccount_batch_executed"
	EventTypeDelegateGranted   = "smartaccount_delegate_granted"
	EventTypeDelegateRevoked   = "smartaccount_delegate_revoked"
	EventTypeRecoveryProposed  = "smartaccount_recovery_proposed"
	EventTypeRecoveryConfirmed = "smartaccount_recovery_confirmed"
	EventTypeRecoveryExecuted  = "smartaccount_recovery_executed"
	EventTypeRecoveryCancelled = "smartaccount_recovery_cancelled"

	AttributeKeyOwner         = "owner"
	AttributeKeySender        = "sender"
	AttributeKeyDelegate      = "delegate"
	AttributeKeyGuardian      = "guardian"
	AttributeKeyNewOwner      = "new_owner"
	AttributeKeyProposalId    = "proposal_id"
	AttributeKeyExpiry        = "expiry"
	AttributeKeyDeadline      = "deadline"
	AttributeKeyCollateralOut = "collateral_out"
	AttributeKeyMinted        = "minted"
	AttributeKeyBurned        = "burned"
	AttributeKeyAssetOut      = "asset_out"
	AttributeKeyCallCount     = "call_count"
	AttributeKeySuccessCount  = "success_count"
)
