// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ratchet-works/ratchet/ent/epic"
	"github.com/ratchet-works/ratchet/ent/event"
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/schema"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/ent/task"
	"github.com/ratchet-works/ratchet/ent/tasktest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	epicFields := schema.Epic{}.Fields()
	_ = epicFields
	// epicDescCreatedAt is the schema descriptor for created_at field.
	epicDescCreatedAt := epicFields[6].Descriptor()
	// epic.DefaultCreatedAt holds the default value on creation for the created_at field.
	epic.DefaultCreatedAt = epicDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	qualitycheckFields := schema.QualityCheck{}.Fields()
	_ = qualitycheckFields
	// qualitycheckDescRating is the schema descriptor for rating field.
	qualitycheckDescRating := qualitycheckFields[3].Descriptor()
	// qualitycheck.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	qualitycheck.RatingValidator = func() func(int) error {
		validators := qualitycheckDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// qualitycheckDescToolUses is the schema descriptor for tool_uses field.
	qualitycheckDescToolUses := qualitycheckFields[4].Descriptor()
	// qualitycheck.DefaultToolUses holds the default value on creation for the tool_uses field.
	qualitycheck.DefaultToolUses = qualitycheckDescToolUses.Default.(int)
	// qualitycheckDescErrors is the schema descriptor for errors field.
	qualitycheckDescErrors := qualitycheckFields[5].Descriptor()
	// qualitycheck.DefaultErrors holds the default value on creation for the errors field.
	qualitycheck.DefaultErrors = qualitycheckDescErrors.Default.(int)
	// qualitycheckDescBrowserVerifications is the schema descriptor for browser_verifications field.
	qualitycheckDescBrowserVerifications := qualitycheckFields[6].Descriptor()
	// qualitycheck.DefaultBrowserVerifications holds the default value on creation for the browser_verifications field.
	qualitycheck.DefaultBrowserVerifications = qualitycheckDescBrowserVerifications.Default.(int)
	// qualitycheckDescCreatedAt is the schema descriptor for created_at field.
	qualitycheckDescCreatedAt := qualitycheckFields[10].Descriptor()
	// qualitycheck.DefaultCreatedAt holds the default value on creation for the created_at field.
	qualitycheck.DefaultCreatedAt = qualitycheckDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[7].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescToolUseCount is the schema descriptor for tool_use_count field.
	sessionDescToolUseCount := sessionFields[9].Descriptor()
	// session.DefaultToolUseCount holds the default value on creation for the tool_use_count field.
	session.DefaultToolUseCount = sessionDescToolUseCount.Default.(int)
	// sessionDescErrorCount is the schema descriptor for error_count field.
	sessionDescErrorCount := sessionFields[10].Descriptor()
	// session.DefaultErrorCount holds the default value on creation for the error_count field.
	session.DefaultErrorCount = sessionDescErrorCount.Default.(int)
	// sessionDescTokensInput is the schema descriptor for tokens_input field.
	sessionDescTokensInput := sessionFields[11].Descriptor()
	// session.DefaultTokensInput holds the default value on creation for the tokens_input field.
	session.DefaultTokensInput = sessionDescTokensInput.Default.(int64)
	// sessionDescTokensOutput is the schema descriptor for tokens_output field.
	sessionDescTokensOutput := sessionFields[12].Descriptor()
	// session.DefaultTokensOutput holds the default value on creation for the tokens_output field.
	session.DefaultTokensOutput = sessionDescTokensOutput.Default.(int64)
	// sessionDescTokensCacheCreation is the schema descriptor for tokens_cache_creation field.
	sessionDescTokensCacheCreation := sessionFields[13].Descriptor()
	// session.DefaultTokensCacheCreation holds the default value on creation for the tokens_cache_creation field.
	session.DefaultTokensCacheCreation = sessionDescTokensCacheCreation.Default.(int64)
	// sessionDescTokensCacheRead is the schema descriptor for tokens_cache_read field.
	sessionDescTokensCacheRead := sessionFields[14].Descriptor()
	// session.DefaultTokensCacheRead holds the default value on creation for the tokens_cache_read field.
	session.DefaultTokensCacheRead = sessionDescTokensCacheRead.Default.(int64)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[8].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	tasktestFields := schema.TaskTest{}.Fields()
	_ = tasktestFields
	// tasktestDescCreatedAt is the schema descriptor for created_at field.
	tasktestDescCreatedAt := tasktestFields[5].Descriptor()
	// tasktest.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasktest.DefaultCreatedAt = tasktestDescCreatedAt.Default.(func() time.Time)
}
