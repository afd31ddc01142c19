package primitives

// Tag is a domain separator passed to H. The catalogue below is closed
// and frozen: adding, removing, or renaming any tag is a hard fork
// (spec §6). Nothing outside this file should declare a tag literal.
const (
	TagMerkleLeaf  = "obex.merkle.leaf"
	TagMerkleNode  = "obex.merkle.node"
	TagMerkleEmpty = "obex.merkle.empty"

	TagAlpha    = "obex.alpha"
	TagSeed     = "obex.seed"
	TagLabel    = "obex.lbl"
	TagIndex    = "obex.idx"
	TagChal     = "obex.chal"
	TagPartLeaf = "obex.part.leaf"
	TagPartRec  = "obex.partrec"
	TagVrfy     = "obex.vrfy"

	TagHeaderID = "obex.header.id"
	TagSlotSeed = "obex.slot.seed"
	TagVdfYCore = "obex.vdf.ycore"
	TagVdfEdge  = "obex.vdf.edge"

	TagTxAccess   = "obex.tx.access"
	TagTxBodyV1   = "obex.tx.body.v1"
	TagTxID       = "obex.tx.id"
	TagTxCommit   = "obex.tx.commit"
	TagTxSig      = "obex.tx.sig"
	TagTxIDLeaf   = "obex.txid.leaf"
	TagTicketID   = "obex.ticket.id"
	TagTicketLeaf = "obex.ticket.leaf"

	TagRewardDraw = "obex.reward.draw"
	TagRewardRank = "obex.reward.rank"

	TagSysTx = "sys.tx"
)
