package rendering

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrintPDF(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping headless browser test in short mode")
	}
	if _, err := exec.LookPath("google-chrome"); err != nil {
		if _, err := exec.LookPath("chromium"); err != nil {
			t.Skip("Chrome/Chromium not installed")
		}
	}

	html, err := RenderHTML(sampleResume())
	require.NoError(t, err)

	pdf, err := PrintPDF(context.Background(), html, 60*time.Second)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
