// Package errors provides structured errors for the pokerole-bot project.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes survive wrapping, so a repository NotFound is
// still a NotFound by the time it reaches the chat handler.
//
// # Rules errors
//
// The rules engine reports four kinds of failure, each mapped onto a code:
//
//	errors.Expression("unknown attribute: dexteritty")   // CodeInvalidArgument
//	errors.State("You can only clash once per round.")   // CodeFailedPrecondition
//	errors.Reference("The move to be clashed doesn't exist anymore")
//	                                                     // CodeNotFound
//	errors.Permission("You can't use this item.")         // CodePermissionDenied
//
// Chat handlers surface errors with UserMessage, which returns the message of
// rules errors verbatim and a generic apology for anything internal.
//
// # Wrapping
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get actor")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("SpecialDefenseStat", cfg.SpecialDefenseStat, []string{"vitality", "insight"}, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// ToGRPCError and UnaryServerInterceptor translate codes into gRPC statuses
// for the operational endpoint.
package errors
