package kernel

import (
	"github.com/rs/zerolog"

	"github.com/aminnizamdev/obex/admission"
	"github.com/aminnizamdev/obex/crypto/memlabel"
	"github.com/aminnizamdev/obex/header"
	kerrors "github.com/aminnizamdev/obex/internal/errors"
	"github.com/aminnizamdev/obex/internal/logging"
	"github.com/aminnizamdev/obex/internal/metrics"
	"github.com/aminnizamdev/obex/participation"
	"github.com/aminnizamdev/obex/primitives"
	"github.com/aminnizamdev/obex/tokenomics"
)

// Kernel threads the four engines through one slot at a time. It holds
// the engines' persistent per-chain state (admission nonces, the
// emission accumulator, the NLB epoch ratios) and the process-wide
// logger and metrics registry; it never holds consensus logic the
// engine packages don't already implement.
type Kernel struct {
	log     zerolog.Logger
	metrics *metrics.Registry

	beacon  header.BeaconVerifier
	vrf     participation.VrfVerifier
	derive  participation.LabelDeriver
	tickets header.TicketRootProvider
	parts   header.PartRootProvider
	txs     header.TxRootProvider

	admission *admission.State
	emission  tokenomics.EmissionState
	fees      tokenomics.FeeSplitState
}

// Collaborators bundles the kernel's external dependencies (spec §6
// "consumed interfaces"): the VDF beacon oracle and the per-slot root
// providers the header engine validates against. The kernel owns
// admission and tokenomics state itself; it only needs these four from
// the outside.
type Collaborators struct {
	Beacon  header.BeaconVerifier
	Tickets header.TicketRootProvider
	Parts   header.PartRootProvider
	Txs     header.TxRootProvider
}

// New builds a Kernel from cfg and the slot's external collaborators.
// It uses the production ECVRF verifier and the frozen Argon2id label
// deriver; MemlabelMemKiB in cfg, if non-zero, overrides the Argon2id
// memory cost for non-production deployments.
func New(cfg Config, collab Collaborators) *Kernel {
	root := logging.New(cfg.loggingConfig())

	derive := participation.DefaultLabelDeriver
	if cfg.MemlabelMemKiB != 0 {
		params := memlabel.DefaultParams
		params.MemKiB = cfg.MemlabelMemKiB
		derive = func(seed []byte, index uint64) primitives.Hash {
			return memlabel.Derive(seed, index, params)
		}
	}

	return &Kernel{
		log:       root,
		metrics:   metrics.New(),
		beacon:    collab.Beacon,
		vrf:       participation.ECVRFVerifier{},
		derive:    derive,
		tickets:   collab.Tickets,
		parts:     collab.Parts,
		txs:       collab.Txs,
		admission: admission.NewState(),
	}
}

// Metrics returns the kernel's prometheus registry, for mounting its
// HTTP handler on the operator's metrics server.
func (k *Kernel) Metrics() *metrics.Registry { return k.metrics }

// ValidateHeader checks a candidate header against its parent and the
// slot's externally supplied collaborators (spec §4.3). This is the
// α-II engine entry point; the kernel adds only logging and metrics
// around header.Validate.
func (k *Kernel) ValidateHeader(h, parent *header.Header) error {
	eng := logging.For(k.log, logging.EngineHeader)
	stop := k.metrics.Timer(logging.EngineHeader)
	defer stop()

	err := header.Validate(h, parent, k.beacon, k.tickets, k.parts, k.txs)
	if err != nil {
		if e, ok := err.(*kerrors.Error); ok {
			k.metrics.Reject(logging.EngineHeader, e.Kind.String())
		}
		eng.Warn().Err(err).Uint64("slot", h.Slot).Msg("header rejected")
		return err
	}
	k.metrics.Accept(logging.EngineHeader)
	eng.Debug().Uint64("slot", h.Slot).Msg("header accepted")
	return nil
}

// VerifyParticipation checks a single participation record against the
// slot's binding context (spec §4.2). The α-I engine entry point.
func (k *Kernel) VerifyParticipation(r *participation.PartRec, parentID primitives.Hash, slot uint64, yEdgePrev primitives.Hash) error {
	eng := logging.For(k.log, logging.EngineParticipation)
	stop := k.metrics.Timer(logging.EngineParticipation)
	defer stop()

	err := participation.Verify(r, parentID, slot, yEdgePrev, k.vrf, k.derive)
	if err != nil {
		if e, ok := err.(*kerrors.Error); ok {
			k.metrics.Reject(logging.EngineParticipation, e.Kind.String())
		}
		eng.Warn().Err(err).Uint64("slot", slot).Msg("participation record rejected")
		return err
	}
	k.metrics.Accept(logging.EngineParticipation)
	return nil
}

// AdmitTransaction runs the single-transaction admission checks (spec
// §4.4) and advances the kernel's persistent per-sender nonce state on
// acceptance. The α-III engine entry point.
func (k *Kernel) AdmitTransaction(tx *admission.TxBody, sig [64]byte) (*admission.TicketRecord, error) {
	eng := logging.For(k.log, logging.EngineAdmission)
	stop := k.metrics.Timer(logging.EngineAdmission)
	defer stop()

	rec, err := k.admission.AdmitTx(tx, sig)
	if err != nil {
		if e, ok := err.(*kerrors.Error); ok {
			k.metrics.Reject(logging.EngineAdmission, e.Kind.String())
		}
		eng.Warn().Err(err).Str("sender", primitives.Hash(tx.Sender).String()).Msg("transaction rejected")
		return nil, err
	}
	k.metrics.Accept(logging.EngineAdmission)
	return rec, nil
}

// SlotSettlement is the full set of system transactions a slot's
// tokenomics pass produces, already in canonical order (SPEC_FULL §5.5
// resolution 4).
type SlotSettlement struct {
	Txs []*tokenomics.SysTx
}

// SettleSlot runs the α-T tokenomics pass for slot: advances the
// emission accumulator, routes feeUobx through the current NLB epoch's
// split ratios, and distributes the deterministic reward pool among
// rewardRecipients. The kernel's emission and fee-split state are
// mutated in place so successive calls thread correctly across slots.
func (k *Kernel) SettleSlot(slot uint64, feeUobx uint64, rewardPoolUobx uint64, rewardRecipients [][32]byte) SlotSettlement {
	eng := logging.For(k.log, logging.EngineTokenomics)
	stop := k.metrics.Timer(logging.EngineTokenomics)
	defer stop()

	var txs []*tokenomics.SysTx

	if minted := tokenomics.OnSlotEmission(&k.emission, slot); minted > 0 {
		txs = append(txs, &tokenomics.SysTx{Kind: tokenomics.SysTxEmissionCredit, AmountUobx: minted})
	}

	split := k.fees.RouteFeeWithNLB(slot, feeUobx)
	if split.Escrow > 0 {
		txs = append(txs, &tokenomics.SysTx{Kind: tokenomics.SysTxEscrowCredit, AmountUobx: split.Escrow})
	}
	if split.Verifier > 0 {
		txs = append(txs, &tokenomics.SysTx{Kind: tokenomics.SysTxVerifierCredit, AmountUobx: split.Verifier})
	}
	if split.Treasury > 0 {
		txs = append(txs, &tokenomics.SysTx{Kind: tokenomics.SysTxTreasuryCredit, AmountUobx: split.Treasury})
	}
	if split.Burn > 0 {
		txs = append(txs, &tokenomics.SysTx{Kind: tokenomics.SysTxBurn, AmountUobx: split.Burn})
	}

	payouts, burned := tokenomics.DistributeDRP(slot, rewardRecipients, rewardPoolUobx)
	for _, p := range payouts {
		txs = append(txs, &tokenomics.SysTx{
			Kind:       tokenomics.SysTxRewardPayout,
			AmountUobx: p.AmountUobx,
			Recipient:  p.Recipient,
			Rank:       p.Rank,
		})
	}
	if burned > 0 {
		txs = append(txs, &tokenomics.SysTx{Kind: tokenomics.SysTxBurn, AmountUobx: burned})
	}

	k.metrics.Accept(logging.EngineTokenomics)
	eng.Debug().Uint64("slot", slot).Int("sys_txs", len(txs)).Msg("slot settled")

	return SlotSettlement{Txs: tokenomics.CanonicalSysTxOrder(txs)}
}

// BuildPartRoot is a thin pass-through to the participation engine's
// root construction, exposed here so callers assembling a header don't
// need to import the participation package directly.
func (k *Kernel) BuildPartRoot(keys [][32]byte) primitives.Hash {
	return participation.BuildPartRoot(keys)
}

// BuildTicketRoot is a thin pass-through to the admission engine's
// root construction.
func (k *Kernel) BuildTicketRoot(tickets []*admission.TicketRecord) primitives.Hash {
	return admission.BuildTicketRoot(tickets)
}
