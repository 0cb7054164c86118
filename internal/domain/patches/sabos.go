// Package patches holds the built-in descriptor table that registers the
// SABOS target inside the Rust standard library source tree.
package patches

import (
	m "sabos.dev/pkg/sysport/internal/model"
)

// Marker is the completion marker shared by every SABOS descriptor.
const Marker = `target_os = "sabos"`

// cfgBranch renders a `target_os = "sabos" => { ... }` arm of a cfg_select!
// style macro with the given body lines.
func cfgBranch(body ...string) string {
	branch := `    target_os = "sabos" => {` + "\n"
	for _, line := range body {
		branch += "        " + line + "\n"
	}

	return branch + "    }"
}

const envConstsEntry = `#[cfg(target_os = "sabos")]
pub mod os {
    pub const FAMILY: &str = "";
    pub const OS: &str = "sabos";
    pub const DLL_PREFIX: &str = "";
    pub const DLL_SUFFIX: &str = "";
    pub const DLL_EXTENSION: &str = "";
    pub const EXE_SUFFIX: &str = ".elf";
    pub const EXE_EXTENSION: &str = "elf";
}
`

// SABOS returns a fresh copy of the built-in descriptor table, in the order
// the descriptors must be applied.
func SABOS() []m.DescriptorSpec {
	return []m.DescriptorSpec{
		{
			Target: "sys/pal/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyBeforeLine,
				Anchor:   "    _ => {",
				Insert:   cfgBranch("mod sabos;", "pub use self::sabos::*;"),
			}},
		},
		{
			Target: "sys/alloc/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyBeforeBlockClose,
				Anchor:   "cfg_select!",
				Insert:   cfgBranch("mod sabos;"),
			}},
		},
		{
			Target: "sys/stdio/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyBeforeLine,
				Anchor:   "    _ => {",
				Insert:   cfgBranch("mod sabos;", "pub use sabos::*;"),
			}},
		},
		{
			Target: "sys/thread_local/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{
				{
					// no_threads gate
					Strategy: m.StrategyAfterLine,
					Anchor:   `        target_os = "vexos",`,
					Insert:   `        target_os = "sabos",`,
				},
				{
					// guard gate
					Strategy: m.StrategyAfterLine,
					Anchor:   `            target_os = "vexos",`,
					Insert:   `            target_os = "sabos",`,
				},
			},
		},
		{
			Target: "sys/env_consts.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				// The macro definition also has an #[else] arm, so anchor on
				// the comment that only appears in the invocation.
				Strategy: m.StrategyBeforeLine,
				Anchor:   "// The fallback when none of the other gates match.",
				Insert:   envConstsEntry,
			}},
		},
		{
			Target: "sys/io/error/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyAfterLine,
				Anchor:   `        target_os = "zkvm",`,
				Insert:   `        target_os = "sabos",`,
			}},
		},
		{
			Target: "sys/random/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyBeforeLine,
				Anchor:   "    _ => {}",
				Insert:   cfgBranch("mod sabos;", "pub use sabos::fill_bytes;"),
			}},
		},
		{
			Target: "sys/fs/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyBeforeLine,
				Anchor:   "    _ => {",
				Insert:   cfgBranch("mod sabos;", "use sabos as imp;"),
			}},
		},
		{
			Target: "os/mod.rs",
			Marker: Marker,
			Steps: []m.StepSpec{{
				Strategy: m.StrategyAfterLine,
				Anchor:   "pub mod xous;",
				Insert:   "#[cfg(target_os = \"sabos\")]\npub mod sabos;",
			}},
		},
	}
}
