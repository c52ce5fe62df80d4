package testdata

// NEO key pair with its derived identifiers.
var (
	NeoPrivateKey = "70f642894bc73dc50013be6d1dbe198f43237eaf9458d193c0b416c5385d9717"
	NeoPublicKey  = "0215546555b42add77493cc21db5da9f97acdff49f4d3e79c29fcc03a06a5e976b"
	// NeoScriptHash is in display (big-endian) order.
	NeoScriptHash = "fea2b883725ef2d194c9060f606cd0a0468a2c59"
	NeoAddress    = "APuP9GsSCPJKrexPe49afDV8CQYubZGWd8"
)

// Ethereum key with its address in lowercase hex.
var (
	EthereumPrivateKey = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
	EthereumAddress    = "0x970e8128ab834e8eac17ab8e3812f010678cf791"
)
