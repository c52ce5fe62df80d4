// Package sign contains signing helpers shared by the NEO and Ethereum
// signing paths.
package sign

import (
	"fmt"
	"sync"
)

// SignFunc signs the message at the given index of a batch and returns the
// encoded signature.
type SignFunc func(index int) (string, error)

// SignBatch signs every message of a batch concurrently and returns the
// signatures keyed by message id. Ids have to be unique. If any message fails
// to sign, the error of the lowest failing index is returned and no
// signatures are.
func SignBatch(ids []string, signFunc SignFunc) (map[string]string, error) {
	seen := make(map[string]int, len(ids))
	for index, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("message [%d] has no id", index)
		}
		if previous, ok := seen[id]; ok {
			return nil, fmt.Errorf(
				"messages [%d] and [%d] share id [%s]",
				previous,
				index,
				id,
			)
		}
		seen[id] = index
	}

	var waitGroup sync.WaitGroup
	waitGroup.Add(len(ids))

	type signingOutcome struct {
		index     int
		signature string
		err       error
	}

	signingOutcomesChannel := make(chan *signingOutcome, len(ids))

	for i := range ids {
		go func(index int) {
			defer waitGroup.Done()

			signature, err := signFunc(index)

			signingOutcomesChannel <- &signingOutcome{
				index,
				signature,
				err,
			}
		}(i)
	}

	waitGroup.Wait()
	close(signingOutcomesChannel)

	signatures := make(map[string]string, len(ids))
	var failure *signingOutcome

	for signingOutcome := range signingOutcomesChannel {
		if signingOutcome.err != nil {
			if failure == nil || signingOutcome.index < failure.index {
				failure = signingOutcome
			}
			continue
		}

		signatures[ids[signingOutcome.index]] = signingOutcome.signature
	}

	if failure != nil {
		return nil, fmt.Errorf(
			"could not sign message [%s]: [%w]",
			ids[failure.index],
			failure.err,
		)
	}

	return signatures, nil
}
