// Package scaffold provides the file templates and layout creation for a
// puzzle workspace.
package scaffold

// DispatchTemplate is the initial dispatch file, with day 1 registered.
// The `day N` marker lines inside the advent! block are the splice
// anchors every later registration hangs off.
const DispatchTemplate = `#![allow(dead_code)]
#![allow(unused_variables)]

mod helpers;

use helpers::advent;

advent! {
    day 1
}

fn main() {
    run()
}
`

// DayTemplate is the day source skeleton. new copies it byte-for-byte
// to day_N.rs; init also seeds day_1.rs with it.
const DayTemplate = `use std::fmt::Display;

pub fn problem_1<I>(input_lines: I) -> impl Display
where
    I: Iterator<Item = String>,
{
    "todo"
}

/**** Problem 2 ******/

pub fn problem_2<I>(input_lines: I) -> impl Display
where
    I: Iterator<Item = String>,
{
    "todo"
}
`

// HarnessTemplate is src/helpers.rs: the macro that expands the day
// markers in the dispatch file into runnable problem functions, plus the
// input-reading helpers. Flag surface: --day-N selects a day (default
// all), -x/--example reads day_N_example.txt, --p1/--p2 select problems.
// Missing inputs fall back to input/empty.txt.
const HarnessTemplate = `use std::sync::atomic::{AtomicBool, Ordering::*};
use std::{
    fs::File,
    io::{BufRead, BufReader, Lines},
    path::Path,
};

static EXAMPLE: AtomicBool = AtomicBool::new(false);

pub fn is_example() -> bool {
    EXAMPLE.load(Relaxed)
}

pub fn set_example() {
    EXAMPLE.store(true, Relaxed);
}

/// Expands the registered days into per-day problem runners and the CLI.
macro_rules! advent {
    ($(day $day_num:literal)+) => {

        use paste::paste;
        use clap::Parser;

        $(
            paste! { mod [<day_ $day_num>]; }
            advent!(__internal $day_num 1);
            advent!(__internal $day_num 2);
        )+

        paste! {
            #[derive(Parser, Debug)]
            struct Args {
                #[arg(short = 'x', long, default_value_t = false)]
                example: bool,

                #[arg(long = "p1")]
                problem_1: bool,

                #[arg(long = "p2")]
                problem_2: bool,

                $(
                    #[arg(long = concat!("day-", $day_num))]
                        [<day_ $day_num>]: bool,

                )*
            }
        }

        fn run() {
            let args = Args::parse();

            paste! {
                let run_all_days = true $(
                    && !args.[<day_ $day_num>]
                )*;
            }

            if args.example {
                $crate::helpers::set_example();
            }

            let run_all_problems = (!args.problem_1) && (!args.problem_2);

            paste! { $(
                if run_all_days || paste! { args.[<day_ $day_num>] } {

                    if run_all_problems || args.problem_1 {
                        if args.example {
                            [<day_ $day_num _problem_1_example>]();
                        } else {
                            [<day_ $day_num _problem_1>]();
                        }
                    }

                    if run_all_problems || args.problem_2 {
                        if args.example {
                            [<day_ $day_num _problem_2_example>]();
                        } else {
                            [<day_ $day_num _problem_2>]();
                        }
                    }
                }
            )+ }
        }
    };

    (__internal $day_num:literal $problem_num:literal) => {
        paste! {

            fn [<day_ $day_num _problem_ $problem_num>]() {
                print!("🎄 Day {}\t Problem {}  ", $day_num, $problem_num);
                let file = concat!("input/day_", $day_num, ".txt");

                let lines = $crate::helpers::read_lines(file).ok()
                    .unwrap_or_else(|| {
                        $crate::helpers::read_lines("input/empty.txt").expect(
                            "Failed to open input/empty.txt"
                        )
                    });

                let start = std::time::Instant::now();
                let result = [<day_ $day_num>]::[<problem_ $problem_num>](
                    lines.map(|line| line.expect(
                        concat!("Failed to read line from input/day_", $day_num, ".txt")
                    ))
                );

                let dur = start.elapsed();
                println!("  🎊 🎉 -> {}\t{}µs", result, dur.as_micros());
            }

            fn [<day_ $day_num _problem_ $problem_num _example>]() {
                print!("🎄 Day {}\t Problem {}  ", $day_num, $problem_num);
                let file = concat!("input/day_", $day_num, "_example.txt");

                let lines = $crate::helpers::read_lines(file).ok()
                    .unwrap_or_else(|| {
                        $crate::helpers::read_lines("input/empty.txt").expect(
                            "Failed to open input/empty.txt"
                        )
                    });

                let start = std::time::Instant::now();
                let result = [<day_ $day_num>]::[<problem_ $problem_num>](
                    lines.map(|line| line.expect(
                        concat!("Failed to read line from input/day_", $day_num, "_example.txt")
                    ))
                );

                let dur = start.elapsed();
                println!("  🎊 🎉 -> {}\t{}µs", result, dur.as_micros());
            }
        }
    };
}

pub(crate) use advent;

pub fn read_lines<P>(filename: P) -> std::io::Result<Lines<BufReader<File>>>
where
    P: AsRef<Path>,
{
    let file = File::open(filename)?;
    Ok(BufReader::new(file).lines())
}
`

// ManifestTemplate is the crate manifest for a fresh workspace.
const ManifestTemplate = `[package]
name = "advent"
version = "0.1.0"
edition = "2021"

[dependencies]
clap = { version = "4", features = ["derive"] }
paste = "1"
`

// ConfigTemplate is the advent.yaml written by init. Everything is
// commented out; the values shown are the built-in defaults.
const ConfigTemplate = `# advent workspace configuration.
# Every field is optional; the values below are the defaults.

#input_dir: input
#source_dir: src
#dispatch: src/main.rs
#template: src/template.rs

#runner:
#  command: [cargo, run, --quiet, --]

#watch:
#  debounce_ms: 500
`
