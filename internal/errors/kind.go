package errors

// Kind is the closed taxonomy of consensus-path failures (spec §7).
// Every failure in the kernel surfaces as exactly one Kind; there is no
// escape hatch to a bare error for a consensus decision.
type Kind int

const (
	KindUnknown Kind = iota

	// Size
	KindOversize
	KindTrailingBytes
	KindTruncatedField

	// Codec
	KindInvalidLength
	KindInvalidTag
	KindInvalidDomainSeparator

	// Crypto
	KindVrfVerifyFailed
	KindVrfOutputMismatch
	KindSignatureInvalid

	// Structural
	KindMerkleMismatch
	KindIndexOutOfRange
	KindChallengeCountMismatch
	KindChallengeIndicesMismatch
	KindLabelMismatch

	// Binding
	KindParentMismatch
	KindSlotMismatch
	KindVersionMismatch
	KindSeedCommitMismatch
	KindTicketRootMismatch
	KindPartRootMismatch
	KindTxRootMismatch

	// Admission
	KindAmountBelowMin
	KindFeeMismatch
	KindNonceNotIncreasing

	// Emission
	KindOverSupply
)

var kindNames = map[Kind]string{
	KindUnknown:                  "unknown",
	KindOversize:                 "oversize",
	KindTrailingBytes:            "trailing_bytes",
	KindTruncatedField:           "truncated_field",
	KindInvalidLength:            "invalid_length",
	KindInvalidTag:               "invalid_tag",
	KindInvalidDomainSeparator:   "invalid_domain_separator",
	KindVrfVerifyFailed:          "vrf_verify_failed",
	KindVrfOutputMismatch:        "vrf_output_mismatch",
	KindSignatureInvalid:         "signature_invalid",
	KindMerkleMismatch:           "merkle_mismatch",
	KindIndexOutOfRange:          "index_out_of_range",
	KindChallengeCountMismatch:   "challenge_count_mismatch",
	KindChallengeIndicesMismatch: "challenge_indices_mismatch",
	KindLabelMismatch:            "label_mismatch",
	KindParentMismatch:           "parent_mismatch",
	KindSlotMismatch:             "slot_mismatch",
	KindVersionMismatch:          "version_mismatch",
	KindSeedCommitMismatch:       "seed_commit_mismatch",
	KindTicketRootMismatch:       "ticket_root_mismatch",
	KindPartRootMismatch:         "part_root_mismatch",
	KindTxRootMismatch:           "tx_root_mismatch",
	KindAmountBelowMin:           "amount_below_min",
	KindFeeMismatch:              "fee_mismatch",
	KindNonceNotIncreasing:       "nonce_not_increasing",
	KindOverSupply:               "over_supply",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(?)"
}

// Error lets a bare Kind be used as an error directly, e.g. in Is
// comparisons: `errors.Is(err, errors.KindTicketRootMismatch)`.
func (k Kind) Error() string { return k.String() }
