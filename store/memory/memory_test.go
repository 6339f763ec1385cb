package memory

import (
	"bytes"
	"testing"

	"github.com/clarktrimble/sabot"

	"furrow/store/storetest"
)

func TestMemory(t *testing.T) {

	mem := New(&sabot.Sabot{Writer: &bytes.Buffer{}})
	defer mem.Close()

	storetest.Run(t, mem)
}
