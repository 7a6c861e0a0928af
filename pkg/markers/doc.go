// Package markers finds the two kinds of boilergen markers in template text.
//
// Tags delimit named regions that injections can target:
//
//	# <<boilergen:blueprints
//	app.register_blueprint(auth_bp)
//	# boilergen:blueprints>>
//
// Config markers live inside a quoted literal and name a value that is
// substituted at generation time, optionally with an in-template default:
//
//	debug = "boilergen:config | debug | True"
package markers
