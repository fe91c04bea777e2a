package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

var hostDefaults = resource.Defaults{
	resource.HostMaintenanceState: resource.TextValue("OFF"),
	resource.HostRackInfo:         resource.TextValue("/default-rack"),
}

func TestMergeDefaults(t *testing.T) {
	type testCase struct {
		name     string
		request  resource.Request
		initial  map[resource.PropertyID]resource.Value
		expected map[resource.PropertyID]resource.Value
	}

	cases := []testCase{
		{
			name:    "wanted and absent",
			request: resource.NewReadRequest(resource.HostRackInfo),
			expected: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo: resource.TextValue("/default-rack"),
			},
		},
		{
			name:     "not wanted",
			request:  resource.NewReadRequest(resource.HostName),
			expected: map[resource.PropertyID]resource.Value{},
		},
		{
			name:    "present is kept",
			request: resource.NewReadRequest(resource.HostRackInfo),
			initial: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo: resource.TextValue("/rack-2"),
			},
			expected: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo: resource.TextValue("/rack-2"),
			},
		},
		{
			name:    "present null is kept",
			request: resource.NewReadRequest(resource.HostRackInfo),
			initial: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo: resource.NullValue(),
			},
			expected: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo: resource.NullValue(),
			},
		},
		{
			name:    "wants all",
			request: resource.NewReadRequest(),
			expected: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo:         resource.TextValue("/default-rack"),
				resource.HostMaintenanceState: resource.TextValue("OFF"),
			},
		},
		{
			name:    "category",
			request: resource.NewReadRequest().WithCategories(resource.CategoryHosts),
			expected: map[resource.PropertyID]resource.Value{
				resource.HostRackInfo:         resource.TextValue("/default-rack"),
				resource.HostMaintenanceState: resource.TextValue("OFF"),
			},
		},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			res := resource.New(resource.Host)
			for id, value := range c.initial {
				require.NoError(t, res.SetProperty(id, value))
			}

			res.MergeDefaults(c.request, hostDefaults)

			actual := res.Properties()
			require.Len(t, actual, len(c.expected))

			for id, value := range c.expected {
				assert.True(t, value.Equal(actual[id]), id.String())
			}

			// idempotent
			again := resource.New(resource.Host)
			for id, value := range actual {
				require.NoError(t, again.SetProperty(id, value))
			}

			again.MergeDefaults(c.request, hostDefaults)
			assert.True(t, res.Equal(again))
		})
	}
}

func TestMergeDefaultsIgnoresFrozen(t *testing.T) {
	res := resource.New(resource.Host).Freeze()

	res.MergeDefaults(resource.NewReadRequest(), hostDefaults)

	assert.Equal(t, 0, res.Len())
}

func TestDefaultsValidate(t *testing.T) {
	schema, err := resource.SchemaOf(resource.Host)
	require.NoError(t, err)

	assert.NoError(t, hostDefaults.Validate(schema))

	invalid := resource.Defaults{resource.ClusterName: resource.TextValue("x")}
	assert.Error(t, invalid.Validate(schema))
}
