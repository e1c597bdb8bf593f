package identity

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// identifierLength üretilen pseudo-identifier'ın karakter uzunluğu.
const identifierLength = 24

// GenerateIdentifier cihaz için pseudo-benzersiz bir token üretir: kaba ortam
// sinyalleri (user agent + istemci adresi) milisaniyelik zaman damgasıyla
// birleştirilir ve base64 ile kodlanır. Kriptografik bir kimlik değildir;
// dönen misafiri tanımaya yarayan en iyi-çaba bir parmak izidir.
func GenerateIdentifier(userAgent, clientAddr string) string {
	raw := fmt.Sprintf("%s-%s-%d", userAgent, clientAddr, time.Now().UnixMilli())
	encoded := base64.RawURLEncoding.EncodeToString([]byte(raw))
	if len(encoded) > identifierLength {
		encoded = encoded[:identifierLength]
	}
	return encoded
}

// NormalizeDisplayName ismi kırpar. Boş kalan isim geçersizdir; benzersizlik
// kontrolü yapılmaz (isim insan-okunur eşleşme anahtarı, identifier tie-breaker).
func NormalizeDisplayName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	return trimmed, trimmed != ""
}
