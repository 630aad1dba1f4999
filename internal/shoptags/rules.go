package shoptags

import (
	"github.com/dlclark/regexp2"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

// Rules use ECMAScript semantics: ASCII \b and support for the negative
// lookahead in the maintenance rule, which RE2 cannot express.
const ruleOptions = regexp2.IgnoreCase | regexp2.ECMAScript

type serviceRule struct {
	re  *regexp2.Regexp
	tag domain.ServiceTag
}

type specialtyRule struct {
	re  *regexp2.Regexp
	tag domain.SpecialtyTag
}

func svc(pattern string, tag domain.ServiceTag) serviceRule {
	return serviceRule{re: regexp2.MustCompile(pattern, ruleOptions), tag: tag}
}

func spec(pattern string, tag domain.SpecialtyTag) specialtyRule {
	return specialtyRule{re: regexp2.MustCompile(pattern, ruleOptions), tag: tag}
}

// serviceRules is evaluated top to bottom against the combined shop text.
// Every rule fires independently; a tag may be produced by more than one rule.
var serviceRules = []serviceRule{
	// general / maintenance
	svc(`auto\s*repair|general\s*repair|\brepairs?\b`, domain.ServiceGeneral),
	svc(`maintenance|\bservice\b(?!\s*advisor)`, domain.ServiceMaintenance),
	svc(`oil\s*change|oil|lube`, domain.ServiceOilChange),
	svc(`diagnostic|diagnostics|scan|code\s*read|check\s*engine`, domain.ServiceDiagnostics),

	// systems
	svc(`brake`, domain.ServiceBrakes),
	svc(`suspension|shock|strut|control\s*arm|ball\s*joint|tie\s*rod`, domain.ServiceSuspension),
	svc(`align|alignment`, domain.ServiceAlignment),
	svc(`tire|tires|tyre|tyres|flat|puncture|wheel`, domain.ServiceTires),
	svc(`a/c|air\s*conditioning|hvac|ac\s*service`, domain.ServiceAC),
	svc(`engine|misfire|spark|timing`, domain.ServiceEngine),
	svc(`transmission|gearbox|clutch`, domain.ServiceTransmission),
	svc(`exhaust|muffler|catalytic`, domain.ServiceExhaust),
	svc(`electric|electrical|starter|alternator|battery|wiring`, domain.ServiceElectrical),

	// body work is matched generously; collision also gets its own tag
	svc(`collision|collision\s*repair|crash|body\s*shop|auto\s*body|autobody|body\s*work|bodywork|dent|paint|paintless`, domain.ServiceBody),
	svc(`collision|collision\s*repair|crash`, domain.ServiceCollision),

	// fleets / commercial / heavy
	svc(`fleet`, domain.ServiceFleet),
	svc(`commercial`, domain.ServiceCommercial),
	svc(`truck|trucks`, domain.ServiceTruck),
	svc(`trailer|trailers`, domain.ServiceTrailer),

	svc(`performance|racing|tune`, domain.ServicePerformance),
	svc(`restoration|classic`, domain.ServiceRestoration),
}

var specialtyRules = []specialtyRule{
	// broad categories
	spec(`domestic`, domain.SpecialtyDomestic),
	spec(`import`, domain.SpecialtyImport),
	spec(`european|euro`, domain.SpecialtyEuropean),
	spec(`asian`, domain.SpecialtyAsian),

	// brands
	spec(`\bford\b`, domain.SpecialtyFord),
	spec(`\bgm\b|chev|chevrolet|gmc|buick|cadillac`, domain.SpecialtyGM),
	spec(`\btoyota\b|lexus`, domain.SpecialtyToyota),
	spec(`\bhonda\b|acura`, domain.SpecialtyHonda),
	spec(`mercedes|benz|\bmb\b`, domain.SpecialtyMercedes),
	spec(`\bbmw\b|mini`, domain.SpecialtyBMW),
	spec(`volkswagen|\bvw\b|\baudi\b`, domain.SpecialtyVWAudi),

	// business types
	spec(`fleet`, domain.SpecialtyFleet),
	spec(`commercial`, domain.SpecialtyCommercial),

	// shop types
	spec(`electrical|electric`, domain.SpecialtyElectrical),
	spec(`auto\s*body|body\s*shop|autobody`, domain.SpecialtyBody),
	spec(`performance|racing`, domain.SpecialtyPerformance),
	spec(`restoration|classic`, domain.SpecialtyRestoration),
}
