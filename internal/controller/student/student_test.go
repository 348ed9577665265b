package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students-cli/internal/service/student"
	"github.com/aanand-mishra/students-cli/internal/storage/memory"
	"github.com/aanand-mishra/students-cli/internal/types"
)

func TestController_AddAndList(t *testing.T) {
	registrar := student.NewRegistrar(memory.New(), student.IDGenerator{Prefix: "SV", Width: 3})
	c := NewController(registrar)

	alice, err := c.AddStudent(types.Student{Name: "Alice Nguyen"})
	require.NoError(t, err)
	assert.Equal(t, "SV001", alice.ID)

	bob, err := c.AddStudent(types.Student{Name: "Bob Tran"})
	require.NoError(t, err)
	assert.Equal(t, "SV002", bob.ID)

	all, err := c.ListAll()
	require.NoError(t, err)
	assert.Equal(t, []types.Student{alice, bob}, all)
}
