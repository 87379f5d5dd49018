package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/support-bot/internal/config"
)

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "14 999 ZAR", formatMoney(14999, "ZAR"))
	require.Equal(t, "999 ZAR", formatMoney(999, "ZAR"))
	require.Equal(t, "1 234 567 RUB", formatMoney(1234567, "RUB"))
	require.Equal(t, "0 ZAR", formatMoney(0, "ZAR"))
}

func TestPresentationText(t *testing.T) {
	text := presentationText(config.Product{Name: "OSIO Focus line 14", Price: 14999}, "ZAR")
	require.Contains(t, text, "OSIO Focus line 14")
	require.Contains(t, text, "14 999 ZAR")
	require.Contains(t, text, "Ключевые характеристики")
}
