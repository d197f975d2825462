package abi

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

const wordLength = 32

// PackMultiSendCalls produces the packed batch expected by MultiSend: for each call the operation byte,
// the 20 bytes target, the value and data length as 32 bytes words, then the data itself.
func PackMultiSendCalls(calls []*MultiSendCall) ([]byte, error) {
	if len(calls) == 0 {
		return nil, ErrEmptyBatch
	}

	buffer := bytes.NewBuffer(nil)
	for idx, call := range calls {
		err := encodeMultiSendCall(buffer, call)
		if err != nil {
			return nil, fmt.Errorf("%w for call %d", err, idx)
		}
	}

	return buffer.Bytes(), nil
}

func encodeMultiSendCall(writer io.Writer, call *MultiSendCall) error {
	if call == nil {
		return ErrNilTransactionData
	}
	if !call.Operation.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidOperation, call.Operation)
	}

	_, err := writer.Write([]byte{byte(call.Operation)})
	if err != nil {
		return err
	}
	_, err = writer.Write(call.To.Bytes())
	if err != nil {
		return err
	}
	err = encodeWord(writer, bigOrZero(call.Value))
	if err != nil {
		return err
	}
	err = encodeWord(writer, big.NewInt(int64(len(call.Data))))
	if err != nil {
		return err
	}

	_, err = writer.Write(call.Data)
	return err
}

func encodeWord(writer io.Writer, value *big.Int) error {
	_, err := writer.Write(math.U256Bytes(new(big.Int).Set(value)))
	return err
}
