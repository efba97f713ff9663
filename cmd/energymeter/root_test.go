package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisconley/energymeter/specs"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := newRootCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := c.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metering.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestChargeCommand(t *testing.T) {
	t.Run("uses built-in schedule by default", func(t *testing.T) {
		out, err := execute(t, "charge", "--level", "level2", "--base", "10", "--linear", "5")

		require.NoError(t, err)
		assert.Equal(t, "60\n", out)
	})

	t.Run("uses the schedule from a config file", func(t *testing.T) {
		path := writeConfig(t, "feeSchedule: {level1Factor: 2, level2Factor: 10}\n")

		out, err := execute(t, "--config", path, "charge", "--base", "10", "--linear", "5")

		require.NoError(t, err)
		assert.Equal(t, "20\n", out)
	})

	t.Run("prints the widened value for max operands", func(t *testing.T) {
		path := writeConfig(t, "feeSchedule: {level1Factor: 2, level2Factor: 10}\n")

		out, err := execute(t, "--config", path, "charge", "--base", "2147483647", "--linear", "2147483647")

		require.NoError(t, err)
		assert.Equal(t, "6442450941\n", out)
	})

	t.Run("with unknown level returns error", func(t *testing.T) {
		_, err := execute(t, "charge", "--level", "level9")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown fee level")
	})
}

func TestMultiplyCommand(t *testing.T) {
	t.Run("does not wrap at 32 bits", func(t *testing.T) {
		out, err := execute(t, "multiply", "2147483647", "2")

		require.NoError(t, err)
		assert.Equal(t, "4294967294\n", out)
	})

	t.Run("with out of range operand returns error", func(t *testing.T) {
		_, err := execute(t, "multiply", "2147483648", "2")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid 32-bit integer")
	})
}

func TestSizeOfCommand(t *testing.T) {
	t.Run("prints known and default sizes", func(t *testing.T) {
		out, err := execute(t, "sizeof", "p/avm/Address", "unknown/Type")

		require.NoError(t, err)
		assert.Equal(t, "p/avm/Address\t24\nunknown/Type\t16\n", out)
	})

	t.Run("converts dotted names", func(t *testing.T) {
		out, err := execute(t, "sizeof", "--dotted", "s.java.lang.Enum")

		require.NoError(t, err)
		assert.Equal(t, "s/java/lang/Enum\t28\n", out)
	})

	t.Run("prints generated exception size", func(t *testing.T) {
		out, err := execute(t, "sizeof", "--generated-exception")

		require.NoError(t, err)
		assert.Equal(t, "<generated exception>\t32\n", out)
	})

	t.Run("without type names returns error", func(t *testing.T) {
		_, err := execute(t, "sizeof")

		require.Error(t, err)
	})
}

func TestQuoteCommand(t *testing.T) {
	t.Run("quotes with the config price", func(t *testing.T) {
		path := writeConfig(t, "energyPrice: \"0.001\"\n")

		out, err := execute(t, "--config", path, "quote", "--energy", "423")
		require.NoError(t, err)

		var quote specs.FeeQuoteSpec
		require.NoError(t, json.Unmarshal([]byte(out), &quote))
		assert.Equal(t, specs.FeeQuoteSpec{Energy: 423, EnergyPrice: "0.001", Fee: "0.423"}, quote)
	})

	t.Run("price flag overrides config", func(t *testing.T) {
		out, err := execute(t, "quote", "--energy", "4", "--price", "2.5")
		require.NoError(t, err)

		var quote specs.FeeQuoteSpec
		require.NoError(t, json.Unmarshal([]byte(out), &quote))
		assert.Equal(t, "10", quote.Fee)
	})

	t.Run("with negative energy returns error", func(t *testing.T) {
		_, err := execute(t, "quote", "--energy=-1")

		require.Error(t, err)
	})
}

func TestTableCommand(t *testing.T) {
	t.Run("prints text table", func(t *testing.T) {
		out, err := execute(t, "table")

		require.NoError(t, err)
		assert.Contains(t, out, "level2 factor")
		assert.Contains(t, out, "p/avm/Address")
	})

	t.Run("prints json matching the config", func(t *testing.T) {
		out, err := execute(t, "table", "--json")
		require.NoError(t, err)

		var decoded struct {
			FeeSchedule specs.FeeScheduleSpec   `json:"feeSchedule"`
			HeapSizes   specs.HeapSizeTableSpec `json:"heapSizes"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, specs.DefaultFeeScheduleSpec(), decoded.FeeSchedule)
		assert.Len(t, decoded.HeapSizes.Entries, len(specs.DefaultHeapSizeTableSpec().Entries))
	})
}

func TestRootCommand_Config(t *testing.T) {
	t.Run("with missing config file returns error", func(t *testing.T) {
		_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "table")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})

	t.Run("with invalid config returns error", func(t *testing.T) {
		path := writeConfig(t, "heapSizes: {defaultObjectSize: 0, generatedExceptionSize: 32}\n")

		_, err := execute(t, "--config", path, "table")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid heap size table")
	})

	t.Run("with invalid log level returns error", func(t *testing.T) {
		c := newRootCommand()
		c.SetOut(&bytes.Buffer{})
		c.SetErr(&bytes.Buffer{})
		c.SetArgs([]string{"--log-level", "loud", "table"})

		err := c.Execute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --log-level")
	})
}
