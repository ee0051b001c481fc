package token

import (
	"errors"
	"fmt"
	"quantum_slots/internal/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "quantum_slots"

// GenerateSettlementReceipt подписывает факт расчета. ttl <= 0 значит бессрочная квитанция
func GenerateSettlementReceipt(st *model.Settlement, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := model.SettlementClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  st.SessionID,
			ID:       string(st.Kind) + ":" + strconv.Itoa(st.Level),
			IssuedAt: jwt.NewNumericDate(now),
		},
		SessionKey: st.SessionKey,
		Kind:       st.Kind,
		Level:      st.Level,
		PostLevel5: st.PostLevel5,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifySettlementReceipt(tokenStr string, secretKey []byte) (*model.SettlementClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SettlementClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("invalid receipt: %w", err)
	}

	claims, ok := token.Claims.(*model.SettlementClaims)
	if !ok {
		return nil, errors.New("invalid receipt claims")
	}

	return claims, nil
}
