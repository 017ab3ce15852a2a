package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOTP creates a numeric OTP of the specified length
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	rand.New(rand.NewSource(time.Now().UnixNano()))

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}
