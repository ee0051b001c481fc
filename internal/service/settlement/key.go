package settlement

import (
	"encoding/hex"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

// weiExponent 1 ETH = 10^18 wei
const weiExponent = 18

// SessionKey bytes32 ключ сессии для контракта: keccak256 от id в 0x-hex
func SessionKey(sessionID string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(sessionID))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// EntryFeeWei стоимость входа в wei, дробная часть wei отбрасывается
func EntryFeeWei(eth decimal.Decimal) string {
	return eth.Shift(weiExponent).Floor().String()
}

// quantumUnits квантум в целых единицах для записи
func quantumUnits(q float64) int64 {
	return decimal.NewFromFloat(q).Floor().IntPart()
}
