package transaction

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/switcheo/switcheo-go/pkg/fault"
	"github.com/switcheo/switcheo-go/pkg/fixed8"
)

// transactionRecord mirrors the transaction JSON returned by the exchange.
// Pointers tell missing fields apart from zero values. The hash and sha256
// fields of the record are not needed to serialize and are ignored.
type transactionRecord struct {
	Type       *uint8         `json:"type"`
	Version    *uint8         `json:"version"`
	Claims     []Input        `json:"claims"`
	Script     *string        `json:"script"`
	Gas        *fixed8.Fixed8 `json:"gas"`
	Attributes *[]Attribute   `json:"attributes"`
	Inputs     *[]Input       `json:"inputs"`
	Outputs    *[]Output      `json:"outputs"`
	Scripts    []Witness      `json:"scripts"`
}

// UnmarshalJSON decodes a transaction record. Unknown transaction types and
// missing required fields are rejected here, before any serialization.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	record := &transactionRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return errors.Wrap(err, "malformed transaction record")
	}

	if record.Type == nil {
		return missingField("type")
	}
	transactionType, err := ParseType(*record.Type)
	if err != nil {
		return err
	}

	if record.Version == nil {
		return missingField("version")
	}
	if record.Attributes == nil {
		return missingField("attributes")
	}
	if record.Inputs == nil {
		return missingField("inputs")
	}
	if record.Outputs == nil {
		return missingField("outputs")
	}

	parsed := Transaction{
		Type:       transactionType,
		Version:    *record.Version,
		Claims:     record.Claims,
		Attributes: *record.Attributes,
		Inputs:     *record.Inputs,
		Outputs:    *record.Outputs,
		Scripts:    record.Scripts,
	}

	switch transactionType {
	case ClaimType:
		if parsed.Claims == nil {
			return missingField("claims")
		}
	case InvocationType:
		if record.Script == nil {
			return missingField("script")
		}
		parsed.Script = *record.Script

		if parsed.Version >= 1 {
			if record.Gas == nil {
				return missingField("gas")
			}
			parsed.Gas = *record.Gas
		}
	}

	*t = parsed
	return nil
}

type attributeRecord struct {
	Usage *AttributeUsage `json:"usage"`
	Data  *string         `json:"data"`
}

// UnmarshalJSON decodes an attribute, requiring both usage and data.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	record := &attributeRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return errors.Wrap(err, "malformed attribute record")
	}

	if record.Usage == nil {
		return missingField("attribute usage")
	}
	if record.Data == nil {
		return missingField("attribute data")
	}

	*a = Attribute{Usage: *record.Usage, Data: *record.Data}
	return nil
}

type inputRecord struct {
	PrevHash  *string `json:"prevHash"`
	PrevIndex *int    `json:"prevIndex"`
}

// UnmarshalJSON decodes an input, requiring both the previous hash and index.
func (i *Input) UnmarshalJSON(data []byte) error {
	record := &inputRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return errors.Wrap(err, "malformed input record")
	}

	if record.PrevHash == nil {
		return missingField("prevHash")
	}
	if record.PrevIndex == nil {
		return missingField("prevIndex")
	}

	*i = Input{PrevHash: *record.PrevHash, PrevIndex: *record.PrevIndex}
	return nil
}

type outputRecord struct {
	AssetID    *string        `json:"assetId"`
	ScriptHash *string        `json:"scriptHash"`
	Value      *fixed8.Fixed8 `json:"value"`
}

// UnmarshalJSON decodes an output, requiring the asset id, script hash and
// value. The value may be a JSON number or a decimal string.
func (o *Output) UnmarshalJSON(data []byte) error {
	record := &outputRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return errors.Wrap(err, "malformed output record")
	}

	if record.AssetID == nil {
		return missingField("assetId")
	}
	if record.ScriptHash == nil {
		return missingField("scriptHash")
	}
	if record.Value == nil {
		return missingField("value")
	}

	*o = Output{
		AssetID:    *record.AssetID,
		ScriptHash: *record.ScriptHash,
		Value:      *record.Value,
	}
	return nil
}

func missingField(field string) error {
	return fault.InvalidArgument(field, "required field is missing")
}
