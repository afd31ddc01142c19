package primitives

// Genesis constants (spec §4.3, §6). GenesisParentID is the all-zero
// digest (a parent that does not exist); TxRootGenesis is the
// empty-Merkle root H("obex.merkle.empty"), the root of a slot with no
// transactions.
var (
	GenesisParentID = Hash{}
	TxRootGenesis   = H(TagMerkleEmpty)
)

// GenesisSlot is the slot number of the genesis header.
const GenesisSlot uint64 = 0
