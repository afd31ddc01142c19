package tokenomics

import (
	"sort"

	"github.com/aminnizamdev/obex/internal/codec"
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/primitives"
)

// SysTxKind enumerates the tagged union spec §3 names for SysTx. The
// byte values fix the wire kind tag and double as the canonical
// intra-slot ordering for every kind except RewardPayout, which orders
// by rank among themselves (SPEC_FULL §5.5 resolution 4, grounded on
// the original's canonical_sys_tx_order).
type SysTxKind uint8

const (
	SysTxEscrowCredit SysTxKind = iota
	SysTxEmissionCredit
	SysTxVerifierCredit
	SysTxTreasuryCredit
	SysTxBurn
	SysTxRewardPayout
)

// sysTxDomainPrefix is H("sys.tx"), prepended to every encoded SysTx so
// a SysTx byte string can never collide with any other wire-codec
// encoding in the kernel (SPEC_FULL §5.5 resolution 4).
var sysTxDomainPrefix = primitives.H(primitives.TagSysTx)

// SysTx is one system transaction credited or debited during slot
// finalization (spec §3 "SysTx"). Only the fields relevant to Kind are
// meaningful; Recipient/Rank are unused outside RewardPayout.
type SysTx struct {
	Kind       SysTxKind
	AmountUobx uint64
	Recipient  [32]byte
	Rank       uint64
}

// EncodeSysTx serializes tx as: the 32-byte sys.tx domain prefix, one
// kind byte, then kind-specific fixed fields (amount for credit/burn
// kinds; amount, recipient, and rank for RewardPayout).
func EncodeSysTx(tx *SysTx) []byte {
	w := codec.NewWriter(32 + 1 + 8 + 32 + 8)
	w.Raw(sysTxDomainPrefix[:])
	w.U8(uint8(tx.Kind))
	w.U64(tx.AmountUobx)
	if tx.Kind == SysTxRewardPayout {
		w.Raw(tx.Recipient[:])
		w.U64(tx.Rank)
	}
	return w.Bytes()
}

// DecodeSysTx parses exactly one SysTx from b, rejecting a wrong domain
// prefix, an unrecognized kind byte, truncation, and trailing bytes.
func DecodeSysTx(b []byte) (*SysTx, error) {
	r := codec.NewReader(b)

	prefix, err := r.Raw(32)
	if err != nil {
		return nil, err
	}
	if !primitives.ConstantTimeEqual(prefix, sysTxDomainPrefix[:]) {
		return nil, kerrors.New(kerrors.KindInvalidDomainSeparator, "sys tx: bad domain prefix")
	}

	kindByte, err := r.U8()
	if err != nil {
		return nil, err
	}
	kind := SysTxKind(kindByte)
	if kind > SysTxRewardPayout {
		return nil, kerrors.New(kerrors.KindInvalidTag, "sys tx: unknown kind %d", kindByte)
	}

	amount, err := r.U64()
	if err != nil {
		return nil, err
	}

	tx := &SysTx{Kind: kind, AmountUobx: amount}

	if kind == SysTxRewardPayout {
		recipient, err := r.Raw(32)
		if err != nil {
			return nil, err
		}
		copy(tx.Recipient[:], recipient)
		rank, err := r.U64()
		if err != nil {
			return nil, err
		}
		tx.Rank = rank
	}

	if !r.Done() {
		return nil, kerrors.New(kerrors.KindTrailingBytes, "sys tx: %d trailing bytes", r.Remaining())
	}
	return tx, nil
}

// kindOrder gives every non-RewardPayout kind its fixed position in the
// canonical intra-slot ordering; RewardPayout entries sort after all of
// them, by ascending rank.
var kindOrder = map[SysTxKind]int{
	SysTxEscrowCredit:   0,
	SysTxEmissionCredit: 1,
	SysTxVerifierCredit: 2,
	SysTxTreasuryCredit: 3,
	SysTxBurn:           4,
}

// CanonicalSysTxOrder sorts txs into the frozen canonical order
// (EscrowCredit → EmissionCredit → VerifierCredit → TreasuryCredit →
// Burn → RewardPayout-by-rank) without mutating the input slice.
func CanonicalSysTxOrder(txs []*SysTx) []*SysTx {
	out := make([]*SysTx, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			ra, aHasFixedOrder := kindOrder[a.Kind]
			rb, bHasFixedOrder := kindOrder[b.Kind]
			if !aHasFixedOrder {
				ra = len(kindOrder)
			}
			if !bHasFixedOrder {
				rb = len(kindOrder)
			}
			if ra != rb {
				return ra < rb
			}
		}
		if a.Kind == SysTxRewardPayout && b.Kind == SysTxRewardPayout {
			return a.Rank < b.Rank
		}
		return false
	})
	return out
}
