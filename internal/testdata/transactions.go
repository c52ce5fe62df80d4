// Package testdata contains transactions data used in tests.
package testdata

// Transaction holds transaction specific data.
type Transaction struct {
	JSON        string // transaction record as returned by the exchange
	Hash        string // transaction id
	UnsignedRaw string // serialized transaction before signing
	SignedRaw   string // serialized transaction with witnesses
}

var (
	// InvocationTx is a version 1 invocation transaction depositing to the
	// exchange contract. It has no witnesses yet.
	InvocationTx = Transaction{
		JSON: `{
			"hash": "72b74c96b9174e9b9e1b216f7e8f21a6475e6541876a62614df7c1998c6e8376",
			"sha256": "2109cbb5eea67a06f5dd8663e10fcd1128e28df5721a25d993e05fe2097c34f3",
			"type": 209,
			"version": 1,
			"attributes": [
				{"usage": 32, "data": "592c8a46a0d06c600f06c994d1f25e7283b8a2fe"},
				{"usage": 32, "data": "6a3d9b359fc17d711017daa6c0e14d6172a791ed"}
			],
			"inputs": [
				{"prevHash": "f09b3b697c580d1730cd360da5e1f0beeae00827eb2f0055cbc85a5a4dadd8ea", "prevIndex": 0},
				{"prevHash": "c858e4d2af1e1525fa974fb2b1678caca1f81a5056513f922789594939ff713d", "prevIndex": 31}
			],
			"outputs": [
				{
					"assetId": "602c79718b16e442de58778e148d0b1084e3b2dffd5de6b7b16cee7969282de7",
					"scriptHash": "e707714512577b42f9a011f8b870625429f93573",
					"value": 1e-08
				}
			],
			"scripts": [],
			"script": "0800e1f505000000001432e125258b7db0a0dffde5bd03b2b859253538ab14592c8a46a0d06c600f06c994d1f25e7283b8a2fe53c1076465706f73697467823b63e7c70a795a7615a38d1ba67d9e54c195a1",
			"gas": 0
		}`,
		Hash:        "2302dc4ebfda103617feee028f3ccdf96197a05a643e3c6300f1bfec597204e9",
		UnsignedRaw: "d101520800e1f505000000001432e125258b7db0a0dffde5bd03b2b859253538ab14592c8a46a0d06c600f06c994d1f25e7283b8a2fe53c1076465706f73697467823b63e7c70a795a7615a38d1ba67d9e54c195a100000000000000000220592c8a46a0d06c600f06c994d1f25e7283b8a2fe206a3d9b359fc17d711017daa6c0e14d6172a791ed02ead8ad4d5a5ac8cb55002feb2708e0eabef0e1a50d36cd30170d587c693b9bf000003d71ff3949598927923f5156501af8a1ac8c67b1b24f97fa25151eafd2e458c81f0001e72d286979ee6cb1b7e65dfddfb2e384100b8d148e7758de42e4168b71792c6001000000000000007335f929546270b8f811a0f9427b5712457107e7",
	}

	// InvocationWitness is a witness attached to InvocationTx to build
	// SignedInvocationTx.
	InvocationWitness = struct {
		InvocationScript   string
		VerificationScript string
	}{
		InvocationScript:   "40a543997d84f12798350c09bdef2cdb171bf41ed3e4a5f808af2feb0c56263009c7ef45afd6494bc8bb44b5274ce2e46d91eba5ad8b7136a693829bea4bbd5a59",
		VerificationScript: "210215546555b42add77493cc21db5da9f97acdff49f4d3e79c29fcc03a06a5e976bac",
	}

	// SignedInvocationTx is InvocationTx with InvocationWitness attached.
	SignedInvocationTx = Transaction{
		Hash:        InvocationTx.Hash,
		UnsignedRaw: InvocationTx.UnsignedRaw,
		SignedRaw:   InvocationTx.UnsignedRaw + "014140a543997d84f12798350c09bdef2cdb171bf41ed3e4a5f808af2feb0c56263009c7ef45afd6494bc8bb44b5274ce2e46d91eba5ad8b7136a693829bea4bbd5a5923210215546555b42add77493cc21db5da9f97acdff49f4d3e79c29fcc03a06a5e976bac",
	}
)
