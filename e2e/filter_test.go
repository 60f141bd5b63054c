//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchFiltersList(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithFruit("--editable"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Enter()
	require.True(t, tf.SeePlain("Cherry"), "List should open")

	// "an" only matches Banana and Durian
	require.NoError(t, tf.Type("an"))
	require.True(t, tf.SeePlain("an"), "Search text should be echoed")

	// The filtered list has Banana first; Enter toggles it
	tf.Enter()
	require.True(t, tf.SeePlain("✓"), "Filtered row should be selectable")

	// The label replaces the search input once the list closes
	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlain("1 selected"), "Label should count the selection")

	require.NoError(t, tf.Accept())
	require.Equal(t, 0, tf.WaitExit(2*time.Second))
	require.Equal(t, []string{"banana"}, acceptedKeys(tf))
}

func TestFullFilterNeedsContiguousText(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithFruit("--editable", "--filter", "full"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Enter()
	require.True(t, tf.SeePlain("Cherry"), "List should open")

	// With the full policy "ch ry" matches nothing
	require.NoError(t, tf.Type("ch ry"))
	require.True(t, tf.SeePlain("No items to display."), "Nothing matches the whole text")
}

func TestAddItemFromSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithFruit("--editable", "--can-add"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Enter()
	require.NoError(t, tf.Type("Star Fruit"))
	require.True(t, tf.SeePlain("Add Star Fruit"), "Add row should be offered")

	tf.Enter()
	require.True(t, tf.SeePlain("✓"), "New item is selected")

	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlain("Star Fruit ✕"), "New item is shown as a tag")

	require.NoError(t, tf.Accept())
	require.Equal(t, 0, tf.WaitExit(2*time.Second))
	require.Equal(t, []string{"Star-Fruit"}, acceptedKeys(tf))
}
