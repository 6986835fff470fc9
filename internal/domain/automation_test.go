package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAutomationRequest_Validate(t *testing.T) {
	valid := CreateAutomationRequest{
		WorkspaceID: "w1",
		Name:        "Welcome Email Sequence",
		Trigger:     json.RawMessage(`{"type":"segment_joined","segmentId":"s1"}`),
		Steps: []AutomationStepInput{
			{Type: "send_email", Config: json.RawMessage(`{"subject":"Hi"}`)},
			{Type: "wait", Config: json.RawMessage(`{"days":2}`)},
		},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateAutomationRequest)
	}{
		{"missing workspace", func(r *CreateAutomationRequest) { r.WorkspaceID = "" }},
		{"missing name", func(r *CreateAutomationRequest) { r.Name = "" }},
		{"missing trigger", func(r *CreateAutomationRequest) { r.Trigger = nil }},
		{"invalid trigger", func(r *CreateAutomationRequest) { r.Trigger = json.RawMessage(`{`) }},
		{"trigger without type", func(r *CreateAutomationRequest) { r.Trigger = json.RawMessage(`{"segmentId":"s1"}`) }},
		{"step without type", func(r *CreateAutomationRequest) { r.Steps[1].Type = "" }},
		{"step config not object", func(r *CreateAutomationRequest) { r.Steps[0].Config = json.RawMessage(`"x"`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Steps = append([]AutomationStepInput(nil), valid.Steps...)
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestAutomation_TriggerType(t *testing.T) {
	a := &Automation{Trigger: json.RawMessage(`{"type":"contact_created"}`)}
	assert.Equal(t, "contact_created", a.TriggerType())

	a.Trigger = json.RawMessage(`{}`)
	assert.Equal(t, "", a.TriggerType())
}

func TestSegment_Validate(t *testing.T) {
	s := &Segment{WorkspaceID: "w1", Name: "Active Customers", Filters: json.RawMessage(`{"status":"active","tags":["Customer"]}`)}
	assert.NoError(t, s.Validate())

	s.Filters = json.RawMessage(`not json`)
	assert.Error(t, s.Validate())

	s.Filters = nil
	assert.Error(t, s.Validate())
}

func TestCreatePipelineRequest_Validate(t *testing.T) {
	req := CreatePipelineRequest{WorkspaceID: "w1", Name: "Sales", Stages: []PipelineStageInput{{Name: "New"}, {Name: "Won"}}}
	assert.NoError(t, req.Validate())

	req.Stages[1].Name = ""
	err := req.Validate()
	var v ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Equal(t, "Stage name is required at position 1", v.Message)
}

func TestWorkspace_Validate(t *testing.T) {
	w := &Workspace{ID: "w1", Name: "Demo Company", Slug: "demo-workspace", Website: "https://demo.example.com", DefaultFromEmail: "hello@demo.example.com"}
	assert.NoError(t, w.Validate())

	w.DefaultFromEmail = "hello"
	assert.Error(t, w.Validate())

	w.DefaultFromEmail = ""
	w.Slug = ""
	assert.Error(t, w.Validate())
}

func TestMemberRole(t *testing.T) {
	assert.True(t, MemberRoleOwner.CanManage())
	assert.True(t, MemberRoleAdmin.CanManage())
	assert.False(t, MemberRoleUser.CanManage())
	assert.False(t, MemberRole("guest").IsValid())
}
